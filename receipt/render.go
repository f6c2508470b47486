package receipt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"cafe-pos/models"
)

const rule = "======================================================"

// Menu writes the menu listing. Positions are 1-based in the order given, which
// callers take from a fresh ListItems call.
func Menu(w io.Writer, items []models.MenuItem) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "              ** Welcome To our Cafe **")
	fmt.Fprintln(bw, rule)
	for i, it := range items {
		fmt.Fprintf(bw, "           %d. %-25s %d/-\n", i+1, it.Name, it.Price)
	}
	fmt.Fprintln(bw, "           0. Exit")
	fmt.Fprintln(bw, rule)
	return bw.Flush()
}

// Render writes the bill in the fixed-width layout used on screen and on paper.
func Render(w io.Writer, shopName string, bill models.Bill) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw)
	fmt.Fprintf(bw, " ----------- %s   -----------\n", shopName)
	fmt.Fprintln(bw, "          ** Thank you for ordering ***")
	fmt.Fprintf(bw, "Customer Name: %s\n", bill.CustomerName)
	fmt.Fprintf(bw, "Mobile Number: %s\n", bill.Mobile)
	fmt.Fprintln(bw, rule)
	fmt.Fprintf(bw, "%-25s %-10s %-10s %-10s\n", "Item", "Quantity", "Price", "Total")
	fmt.Fprintln(bw, rule)
	for _, l := range bill.Lines {
		fmt.Fprintf(bw, "%-25s %-10d %-10d %-10d\n", l.ItemName, l.Quantity, l.UnitPrice, l.LineTotal)
	}
	fmt.Fprintln(bw, rule)
	fmt.Fprintf(bw, "Grand Total: %d\n", bill.Total)
	fmt.Fprintln(bw, rule)
	return bw.Flush()
}

// RenderString is Render into a string, for printers that take the whole text.
func RenderString(shopName string, bill models.Bill) string {
	var sb strings.Builder
	_ = Render(&sb, shopName, bill)
	return sb.String()
}
