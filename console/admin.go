package console

import (
	"context"
	"errors"

	"cafe-pos/models"
	"cafe-pos/services"
)

func (s *Session) adminPanel(ctx context.Context) error {
	username, err := s.p.RawLine("Enter Admin Username: ")
	if err != nil {
		return err
	}
	password, err := s.p.RawLine("Enter Admin Password: ")
	if err != nil {
		return err
	}

	ok, err := s.deps.Admins.Authenticate(ctx, username, password)
	if err != nil {
		log.Errorf("authenticate admin: %v", err)
		s.p.Println("Could not verify credentials.")
		return nil
	}
	if !ok {
		log.Warningf("admin login failed for %q", username)
		s.p.Println("Invalid Username or Password. Access Denied.")
		return nil
	}
	log.Infof("admin %q logged in", username)

	for {
		s.p.Println("Admin Panel")
		s.p.Println("1. Add Item")
		s.p.Println("2. Remove Item")
		s.p.Println("3. Modify Price")
		s.p.Println("4. Exit")
		choice, err := s.p.Int("Enter your choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = s.addItem(ctx)
		case 2:
			err = s.removeItem(ctx)
		case 3:
			err = s.modifyPrice(ctx)
		case 4:
			log.Infof("admin %q logged out", username)
			return nil
		default:
			s.p.Println("Invalid choice")
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) addItem(ctx context.Context) error {
	name, err := s.p.Line("Enter Name of New Item: ")
	if err != nil {
		return err
	}
	price, err := s.p.Int("Enter Price of New Item: ")
	if err != nil {
		return err
	}

	id, err := s.deps.Catalog.AddItem(ctx, name, int64(price))
	var verr services.ValidationError
	switch {
	case errors.As(err, &verr):
		s.p.Printf("Invalid item: %v\n", verr)
	case err != nil:
		log.Errorf("add menu item: %v", err)
		s.p.Println("Could not add the item.")
	default:
		log.Infof("menu item %d added: %s", id, name)
		s.p.Println("New Item Added Successfully!")
		s.showMenu(ctx)
	}
	return nil
}

func (s *Session) removeItem(ctx context.Context) error {
	pos, err := s.p.Int("Enter Index of Item to Remove: ")
	if err != nil {
		return err
	}

	item, ok := s.resolvePosition(ctx, pos)
	if !ok {
		return nil
	}
	err = s.deps.Catalog.RemoveItem(ctx, item.ID)
	switch {
	case errors.Is(err, services.ErrItemNotFound):
		s.p.Println("Invalid Index")
	case err != nil:
		log.Errorf("remove menu item %d: %v", item.ID, err)
		s.p.Println("Could not remove the item.")
	default:
		log.Infof("menu item %d removed: %s", item.ID, item.Name)
		s.p.Println("Item Removed Successfully!")
		s.showMenu(ctx)
	}
	return nil
}

func (s *Session) modifyPrice(ctx context.Context) error {
	pos, err := s.p.Int("Enter Index of Item to Modify: ")
	if err != nil {
		return err
	}
	price, err := s.p.Int("Enter New Price: ")
	if err != nil {
		return err
	}

	item, ok := s.resolvePosition(ctx, pos)
	if !ok {
		return nil
	}
	err = s.deps.Catalog.SetPrice(ctx, item.ID, int64(price))
	var verr services.ValidationError
	switch {
	case errors.Is(err, services.ErrItemNotFound):
		s.p.Println("Invalid Index")
	case errors.As(err, &verr):
		s.p.Printf("Invalid price: %v\n", verr)
	case err != nil:
		log.Errorf("set price of menu item %d: %v", item.ID, err)
		s.p.Println("Could not modify the price.")
	default:
		log.Infof("menu item %d price %d -> %d", item.ID, item.Price, price)
		s.p.Println("Price Modified Successfully!")
		s.showMenu(ctx)
	}
	return nil
}

// resolvePosition maps a displayed position to the item currently holding it.
func (s *Session) resolvePosition(ctx context.Context, pos int) (models.MenuItem, bool) {
	item, err := s.deps.Catalog.ItemAtPosition(ctx, pos)
	if errors.Is(err, services.ErrItemNotFound) {
		s.p.Println("Invalid Index")
		return models.MenuItem{}, false
	}
	if err != nil {
		log.Errorf("item at position %d: %v", pos, err)
		s.p.Println("Could not load the menu.")
		return models.MenuItem{}, false
	}
	return item, true
}
