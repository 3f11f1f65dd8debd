package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"

	"storefront/internal/catalog"
	"storefront/internal/checkout"
	"storefront/internal/commands"
	"storefront/internal/money"
)

var errUsage = errors.New("usage")

// RegisterCommands adds the storefront's terminal commands to reg. Output lines go to print.
func (m *Manager) RegisterCommands(reg *commands.Registry, print func(string)) {
	reg.Simple("view", "NAME", "show shop, cart, checkout, login or admin", func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("%w: /view NAME", errUsage)
		}
		v, err := ParseView(args[0])
		if err != nil {
			return err
		}
		return m.ShowView(v)
	})
	reg.Simple("category", "NAME", "filter the grid (all, tops, bottoms, ...)", func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("%w: /category NAME", errUsage)
		}
		c, ok := catalog.ParseCategory(args[0])
		if !ok {
			return fmt.Errorf("%w: %q", catalog.ErrUnknownCategory, args[0])
		}
		return m.SelectCategory(c)
	})
	reg.Simple("products", "", "list the products under the current filter", func([]string) error {
		for _, p := range m.VisibleProducts() {
			print(fmt.Sprintf("#%d %s %s %s (%d in stock)", p.ID, p.Glyph, p.Name, money.Format(p.Price), p.Stock))
		}
		return nil
	})
	reg.Simple("add", "ID", "add one unit to the cart", func(args []string) error {
		id, err := oneID(args, "/add ID")
		if err != nil {
			return err
		}
		return m.AddToCart(id)
	})
	reg.Simple("remove", "ID", "remove a cart line", func(args []string) error {
		id, err := oneID(args, "/remove ID")
		if err != nil {
			return err
		}
		if !m.RemoveFromCart(id) {
			print(fmt.Sprintf("product %d is not in the cart", id))
		}
		return nil
	})
	reg.Simple("qty", "ID DELTA", "change a cart line's quantity (never below 1)", func(args []string) error {
		if len(args) != 2 {
			return fmt.Errorf("%w: /qty ID DELTA", errUsage)
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("id: %w", err)
		}
		delta, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("delta: %w", err)
		}
		if qty, ok := m.UpdateQuantity(id, delta); ok {
			print(fmt.Sprintf("quantity %d", qty))
		}
		return nil
	})
	reg.Simple("cart", "", "print the cart", func([]string) error {
		for _, l := range m.CartLines() {
			print(fmt.Sprintf("#%d %s x%d %s", l.Product.ID, l.Product.Name, l.Quantity, money.Format(l.Subtotal())))
		}
		print("total " + money.Format(m.CartTotal()))
		return nil
	})
	reg.Simple("login", "USER PASSWORD", "sign in", func(args []string) error {
		if len(args) != 2 {
			return fmt.Errorf("%w: /login USER PASSWORD", errUsage)
		}
		return m.Login(args[0], args[1])
	})
	reg.Simple("register", "USER PASSWORD CONFIRM", "create a customer account", func(args []string) error {
		if len(args) != 3 {
			return fmt.Errorf("%w: /register USER PASSWORD CONFIRM", errUsage)
		}
		return m.Register(args[0], args[1], args[2])
	})
	reg.Simple("logout", "", "sign out and empty the cart", func([]string) error {
		return m.Logout()
	})
	reg.Simple("whoami", "", "print the signed-in user", func([]string) error {
		if id, ok := m.User(); ok {
			print(fmt.Sprintf("%s (%s)", id.Username, id.Role))
		} else {
			print("guest")
		}
		return nil
	})
	reg.Register(commands.Command{
		Name:    "checkout",
		Usage:   "--name --email --address --city --zip --card",
		Summary: "place the order",
		Bind: func(fs *pflag.FlagSet) commands.RunFunc {
			var f checkout.Form
			fs.StringVar(&f.Name, checkout.FieldName, "", "full name")
			fs.StringVar(&f.Email, checkout.FieldEmail, "", "email address")
			fs.StringVar(&f.Address, checkout.FieldAddress, "", "street address")
			fs.StringVar(&f.City, checkout.FieldCity, "", "city")
			fs.StringVar(&f.ZIP, checkout.FieldZIP, "", "ZIP code")
			fs.StringVar(&f.Card, checkout.FieldCard, "", "16 digit card number")
			return func([]string) error {
				order, err := m.SubmitCheckout(f)
				if err != nil {
					return err
				}
				print(fmt.Sprintf("order %s placed: %d items, %s", order.ID, order.Items(), money.Format(order.Total)))
				return nil
			}
		},
	})
	reg.Register(commands.Command{
		Name:    "product",
		Usage:   "create|edit ID|delete ID [flags]",
		Summary: "manage products (admin)",
		Bind:    m.bindProduct(print),
	})
}

func (m *Manager) bindProduct(print func(string)) func(fs *pflag.FlagSet) commands.RunFunc {
	return func(fs *pflag.FlagSet) commands.RunFunc {
		name := fs.String("name", "", "product name")
		price := fs.String("price", "", "price, e.g. 29.99")
		category := fs.String("category", "", "Tops, Bottoms, Dresses, Outerwear or Footwear")
		glyph := fs.String("glyph", "", "emoji shown on the card")
		stock := fs.Int("stock", 0, "units in stock")
		desc := fs.String("description", "", "description")
		yes := fs.Bool("yes", false, "confirm deletion")

		return func(args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("%w: /product create|edit ID|delete ID", errUsage)
			}
			switch args[0] {
			case "create":
				d := catalog.Draft{Name: *name, Glyph: *glyph, Stock: *stock, Description: *desc}
				var err error
				if d.Price, err = parsePrice(*price); err != nil {
					return err
				}
				if d.Category, err = parseCategory(*category); err != nil {
					return err
				}
				p, err := m.CreateProduct(d)
				if err != nil {
					return err
				}
				print(fmt.Sprintf("created #%d %s", p.ID, p.Name))
				return nil
			case "edit":
				id, err := oneID(args[1:], "/product edit ID")
				if err != nil {
					return err
				}
				var pt catalog.Patch
				if fs.Changed("name") {
					pt.Name = name
				}
				if fs.Changed("price") {
					v, err := parsePrice(*price)
					if err != nil {
						return err
					}
					pt.Price = &v
				}
				if fs.Changed("stock") {
					pt.Stock = stock
				}
				if fs.Changed("description") {
					pt.Description = desc
				}
				if fs.Changed("category") {
					c, err := parseCategory(*category)
					if err != nil {
						return err
					}
					pt.Category = &c
				}
				if pt.Empty() {
					return fmt.Errorf("%w: /product edit ID --name|--price|--stock|--description|--category", errUsage)
				}
				p, err := m.EditProduct(id, pt)
				if err != nil {
					return err
				}
				print(fmt.Sprintf("updated #%d %s", p.ID, p.Name))
				return nil
			case "delete":
				id, err := oneID(args[1:], "/product delete ID --yes")
				if err != nil {
					return err
				}
				deleted, err := m.DeleteProduct(id, func(catalog.Product) bool { return *yes })
				if err != nil {
					return err
				}
				if !deleted {
					print(fmt.Sprintf("add --yes to delete product %d", id))
					return nil
				}
				print(fmt.Sprintf("deleted #%d", id))
				return nil
			}
			return fmt.Errorf("%w: unknown action %q", errUsage, args[0])
		}
	}
}

func oneID(args []string, usage string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: %s", errUsage, usage)
	}
	id, err := strconv.Atoi(strings.TrimPrefix(args[0], "#"))
	if err != nil {
		return 0, fmt.Errorf("id %q: %w", args[0], err)
	}
	return id, nil
}

func parsePrice(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("price %q: %w", s, err)
	}
	return d, nil
}

func parseCategory(s string) (catalog.Category, error) {
	c, ok := catalog.ParseCategory(s)
	if !ok || c == catalog.All {
		return "", fmt.Errorf("%w: %q", catalog.ErrUnknownCategory, s)
	}
	return c, nil
}
