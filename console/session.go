package console

import (
	"context"
	"errors"
	"io"
	"strings"

	"cafe-pos/receipt"
	"cafe-pos/services"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("cafe")

// errExit ends Run after a customer leaves with menu choice 0.
var errExit = errors.New("exit requested")

type Deps struct {
	Catalog   services.Catalog
	Customers services.Customers
	Admins    services.Admins
	Orders    services.OrderLog // nil disables order persistence
	Printer   receipt.Printer
	ShopName  string
}

// Session drives the interactive role loop over one input port.
type Session struct {
	p         *Prompter
	deps      Deps
	registrar *services.Registrar
}

func New(in io.Reader, out io.Writer, deps Deps) *Session {
	if deps.Printer == nil {
		deps.Printer = receipt.NoPrinter{}
	}
	return &Session{
		p:         NewPrompter(in, out),
		deps:      deps,
		registrar: services.NewRegistrar(deps.Customers),
	}
}

// Run asks for a role until the input ends or a customer exits with choice 0.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		role, err := s.p.Int("Enter Your Role (1. Customer / 2. Admin): ")
		if err != nil {
			return endOfInput(err)
		}

		switch role {
		case 1:
			err = s.customerSession(ctx)
		case 2:
			err = s.adminPanel(ctx)
		default:
			s.p.Println("Invalid Role")
		}

		if errors.Is(err, errExit) {
			return nil
		}
		if err != nil {
			return endOfInput(err)
		}
	}
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// showMenu lists the catalog from a fresh snapshot so positions match the current table.
func (s *Session) showMenu(ctx context.Context) bool {
	items, err := s.deps.Catalog.ListItems(ctx)
	if err != nil {
		log.Errorf("list menu: %v", err)
		s.p.Println("Could not load the menu.")
		return false
	}
	if err := receipt.Menu(s.p.out, items); err != nil {
		log.Errorf("render menu: %v", err)
		return false
	}
	return true
}

func yes(answer string) bool {
	return strings.EqualFold(answer, "Y")
}
