package console

import (
	"context"
	"errors"
	"io"

	"cafe-pos/models"
	"cafe-pos/receipt"
	"cafe-pos/services"

	"github.com/google/uuid"
)

func (s *Session) customerSession(ctx context.Context) error {
	sessionID := uuid.NewString()

	name, err := s.readName()
	if err != nil {
		return err
	}
	mobile, err := s.readMobile()
	if err != nil {
		return err
	}

	id, err := s.registrar.Register(ctx, name, mobile)
	if err != nil {
		log.Errorf("session %s: register customer: %v", sessionID, err)
		s.p.Println("Could not register customer. Please try again later.")
		return nil
	}
	log.Infof("session %s: customer %d registered", sessionID, id)

	cart := services.NewCart(models.Customer{ID: id, Name: name, Mobile: mobile}, s.deps.Orders)
	s.showMenu(ctx)

	for {
		choice, err := s.p.Int("Enter Your Choice: ")
		if err != nil {
			return err
		}
		if choice == 0 {
			if err := s.finishBill(ctx, sessionID, cart); err != nil {
				return err
			}
			return errExit
		}

		item, ok := s.pickItem(ctx, sessionID, choice)
		if !ok {
			continue
		}
		s.p.Printf("You have selected %s\n", item.Name)

		qty, err := s.readQuantity()
		if err != nil {
			return err
		}

		_, err = cart.AddLine(ctx, item, qty)
		var perr *services.PersistError
		switch {
		case errors.As(err, &perr):
			log.Warningf("session %s: order line kept in cart but not saved: %v", sessionID, perr)
			s.p.Println("Order Added to Cart! (warning: it could not be saved)")
		case err != nil:
			s.p.Printf("Could not add order: %v\n", err)
			continue
		default:
			s.p.Println("Order Added to Cart!")
		}

		again, err := s.p.Line("Do you wish to order anything else (Y/N)? ")
		if err != nil {
			return err
		}
		if again == "N" || again == "n" {
			return s.finishBill(ctx, sessionID, cart)
		}
	}
}

// pickItem resolves a menu choice against the current catalog.
func (s *Session) pickItem(ctx context.Context, sessionID string, choice int) (models.MenuItem, bool) {
	count, err := s.deps.Catalog.ItemCount(ctx)
	if err != nil {
		log.Errorf("session %s: count menu: %v", sessionID, err)
		s.p.Println("Could not load the menu.")
		return models.MenuItem{}, false
	}
	if choice < 1 || choice > count {
		s.p.Println("Invalid Choice")
		return models.MenuItem{}, false
	}
	item, err := s.deps.Catalog.ItemAtPosition(ctx, choice)
	if errors.Is(err, services.ErrItemNotFound) {
		s.p.Println("Invalid Choice")
		return models.MenuItem{}, false
	}
	if err != nil {
		log.Errorf("session %s: item at %d: %v", sessionID, choice, err)
		s.p.Println("Could not load the menu.")
		return models.MenuItem{}, false
	}
	return item, true
}

func (s *Session) readName() (string, error) {
	for {
		name, err := s.p.Line("Enter your name: ")
		if err != nil {
			return "", err
		}
		if name != "" {
			return name, nil
		}
		s.p.Println("Name cannot be empty.")
	}
}

func (s *Session) readMobile() (string, error) {
	for {
		mobile, err := s.p.RawLine("Enter your mobile number: ")
		if err != nil {
			return "", err
		}
		if services.ValidMobile(mobile) {
			return mobile, nil
		}
		s.p.Println("Invalid mobile number. It must be exactly 10 digits.")
	}
}

func (s *Session) readQuantity() (int, error) {
	for {
		qty, err := s.p.Int("Enter the desired Quantity: ")
		if err != nil {
			return 0, err
		}
		if qty >= 1 {
			return qty, nil
		}
		s.p.Println("Quantity must be at least 1.")
	}
}

// finishBill shows the bill and offers to print it. Running out of input at
// the print prompt is treated as "no".
func (s *Session) finishBill(ctx context.Context, sessionID string, cart *services.Cart) error {
	bill := cart.Finalize()
	if err := receipt.Render(s.p.out, s.deps.ShopName, bill); err != nil {
		return err
	}
	log.Infof("session %s: bill finalized, %d lines, total %d", sessionID, len(bill.Lines), bill.Total)

	answer, err := s.p.Line("Do you want to print the bill? (Y/N): ")
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return err
	}
	if !yes(answer) {
		return nil
	}

	err = s.deps.Printer.Print(ctx, receipt.RenderString(s.deps.ShopName, bill))
	switch {
	case errors.Is(err, receipt.ErrNoPrinter):
		s.p.Println("No printer found. Please connect a printer to print the bill.")
	case err != nil:
		log.Errorf("session %s: print bill: %v", sessionID, err)
		s.p.Println("Failed to print the bill.")
	default:
		s.p.Println("Bill sent to the printer.")
	}
	return nil
}
