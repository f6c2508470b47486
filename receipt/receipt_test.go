package receipt

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"cafe-pos/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBill() models.Bill {
	return models.Bill{
		CustomerName: "Ravi",
		Mobile:       "9876543210",
		Lines: []models.OrderLine{
			{ItemName: "Coffee", Quantity: 2, UnitPrice: 50, LineTotal: 100},
			{ItemName: "Bun", Quantity: 3, UnitPrice: 20, LineTotal: 60},
		},
		Total: 160,
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "TEST CAFE", sampleBill()))
	out := buf.String()

	assert.Contains(t, out, "TEST CAFE")
	assert.Contains(t, out, "Customer Name: Ravi")
	assert.Contains(t, out, "Mobile Number: 9876543210")
	assert.Contains(t, out, "Coffee                    2          50         100")
	assert.Contains(t, out, "Bun                       3          20         60")
	assert.Contains(t, out, "Grand Total: 160")
	assert.Equal(t, out, RenderString("TEST CAFE", sampleBill()))
}

func TestMenu_PositionsFollowOrder(t *testing.T) {
	var buf bytes.Buffer
	items := []models.MenuItem{{ID: 7, Name: "Coffee", Price: 50}, {ID: 12, Name: "Bun", Price: 20}}
	require.NoError(t, Menu(&buf, items))

	lines := strings.Split(buf.String(), "\n")
	var listed []string
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if strings.HasPrefix(l, "1.") || strings.HasPrefix(l, "2.") || strings.HasPrefix(l, "0.") {
			listed = append(listed, strings.Join(strings.Fields(l), " "))
		}
	}
	assert.Equal(t, []string{"1. Coffee 50/-", "2. Bun 20/-", "0. Exit"}, listed)
}

func TestNoPrinter(t *testing.T) {
	assert.ErrorIs(t, NoPrinter{}.Print(context.Background(), "bill"), ErrNoPrinter)
}

type fakeSender struct {
	sent []tgbotapi.Chattable
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, f.err
}

func TestTelegramPrinter_Print(t *testing.T) {
	fs := &fakeSender{}
	p := &TelegramPrinter{api: fs, chatID: 42}

	require.NoError(t, p.Print(context.Background(), "Grand Total: 160"))
	require.Len(t, fs.sent, 1)
	msg, ok := fs.sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, int64(42), msg.ChatID)
	assert.Contains(t, msg.Text, "Grand Total: 160")

	fs.err = errors.New("blocked by user")
	assert.Error(t, p.Print(context.Background(), "x"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, p.Print(ctx, "x"), context.Canceled)
}

func TestNewTelegramPrinter_RequiresSettings(t *testing.T) {
	_, err := NewTelegramPrinter("", 1)
	assert.Error(t, err)
	_, err = NewTelegramPrinter("token", 0)
	assert.Error(t, err)
}

func TestTelegramPrinter_EscapesItemNames(t *testing.T) {
	fs := &fakeSender{}
	p := &TelegramPrinter{api: fs, chatID: 7}

	bill := models.Bill{
		CustomerName: "Ravi",
		Mobile:       "9876543210",
		Lines:        []models.OrderLine{{ItemName: "```Tea<b>&", Quantity: 1, UnitPrice: 10, LineTotal: 10}},
		Total:        10,
	}
	require.NoError(t, p.Print(context.Background(), RenderString("CAFE", bill)))
	require.Len(t, fs.sent, 1)
	msg := fs.sent[0].(tgbotapi.MessageConfig)

	assert.Equal(t, tgbotapi.ModeHTML, msg.ParseMode)
	assert.True(t, strings.HasPrefix(msg.Text, "<pre>"))
	assert.True(t, strings.HasSuffix(msg.Text, "</pre>"))
	assert.Contains(t, msg.Text, "```Tea&lt;b&gt;&amp;")
	assert.Equal(t, 1, strings.Count(msg.Text, "<pre>"))
}
