package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zenithlab/storefront-client/internal/apiclient"
	"github.com/zenithlab/storefront-client/internal/domain"
	"github.com/zenithlab/storefront-client/internal/models"
	"github.com/zenithlab/storefront-client/internal/pages"
)

func price(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func newLoginCmd(a *app) *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the storefront",
		RunE: func(cmd *cobra.Command, args []string) error {
			page := &pages.AuthPage{Deps: a.deps}
			user, err := page.Login(a.ctx(), username, password)
			if err != nil {
				return err
			}
			fmt.Printf("Logged in as %s (%s account)\n", user.Username, user.AccountType)
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Drop the local session",
		RunE: func(cmd *cobra.Command, args []string) error {
			page := &pages.AuthPage{Deps: a.deps}
			if err := page.Logout(a.ctx()); err != nil {
				return err
			}
			fmt.Println("Logged out")
			return nil
		},
	}
}

func newRegisterCmd(a *app) *cobra.Command {
	var username, password, confirm string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			page := &pages.AuthPage{Deps: a.deps}
			user, err := page.Register(a.ctx(), username, password, confirm)
			if err != nil {
				return err
			}
			fmt.Printf("Registered %s. You can now login.\n", user.Username)
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password")
	cmd.Flags().StringVar(&confirm, "confirm", "", "password confirmation")
	return cmd
}

func newProductsCmd(a *app) *cobra.Command {
	var filter apiclient.ProductFilter
	cmd := &cobra.Command{
		Use:   "products",
		Short: "List the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			page := &pages.CatalogPage{Deps: a.deps}
			var products []models.Product
			err := pages.Retry(a.ctx(), pages.DefaultRetryConfig(), func() error {
				var err error
				products, err = page.Products(a.ctx(), filter)
				return err
			})
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tPRICE\tCOLOR\tREQUIREMENT")
			for _, p := range products {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
					p.ProductID, p.Name, price(p.Price), p.Color, domain.RequirementText(p.BuyerRequirement))
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&filter.Cat, "cat", 0, "category id")
	cmd.Flags().Float64Var(&filter.MinPrice, "min-price", 0, "minimum price")
	cmd.Flags().Float64Var(&filter.MaxPrice, "max-price", 0, "maximum price")
	cmd.Flags().StringVar(&filter.Color, "color", "", "color")
	return cmd
}

func newCategoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories [id]",
		Short: "List product categories",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page := &pages.CatalogPage{Deps: a.deps}

			if len(args) == 1 {
				id, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid category id %q", args[0])
				}
				cat, err := page.Category(a.ctx(), id)
				if err != nil {
					return err
				}
				fmt.Printf("%s\n%s\n", cat.Name, cat.Description)
				return nil
			}

			cats, err := page.Categories(a.ctx())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME")
			for _, cat := range cats {
				fmt.Fprintf(w, "%d\t%s\n", cat.CategoryID, cat.Name)
			}
			return w.Flush()
		},
	}
}

func newProductCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "product <id>",
		Short: "Show one product with your eligibility",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			page := &pages.CatalogPage{Deps: a.deps}
			view, err := page.ProductDetail(a.ctx(), id)
			if err != nil {
				return err
			}

			p := view.Product
			fmt.Printf("%s\n%s\n%s\n", p.Name, p.Color, price(p.Price))
			if p.Description != "" {
				fmt.Println(p.Description)
			}
			switch {
			case view.Notice == "":
			case !view.LoggedIn:
				fmt.Printf("Note: %s. Please login to check your eligibility.\n", view.Notice)
			case view.CanBuy:
				fmt.Printf("%s (your account qualifies)\n", view.Notice)
			default:
				fmt.Printf("%s. Your account type does not allow purchasing this product. Contact sales for assistance.\n", view.Notice)
			}
			return nil
		},
	}
}

func newCompareCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Manage the comparison list",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <id>",
		Short: "Queue a product for comparison",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			page := pages.NewComparePage(a.deps)
			outcome, err := page.Add(id)
			if err != nil {
				return err
			}
			switch outcome {
			case domain.Added:
				fmt.Println("Added to comparison")
			case domain.AlreadyPresent:
				fmt.Println("Product already in comparison list")
			case domain.CapacityExceeded:
				fmt.Printf("You can only compare up to %d products\n", domain.MaxCompare)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a product from the comparison list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			return pages.NewComparePage(a.deps).Remove(id)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the current selection",
		RunE: func(cmd *cobra.Command, args []string) error {
			page := pages.NewComparePage(a.deps)
			fmt.Printf("%d / %d selected: %v\n", len(page.Workflow.Selection), domain.MaxCompare, []int(page.Workflow.Selection))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "run",
		Short: "Compare the selected products side by side",
		RunE: func(cmd *cobra.Command, args []string) error {
			page := pages.NewComparePage(a.deps)
			products, err := page.Compare(a.ctx())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tPRICE\tCOLOR\tREQUIREMENT\tAI MODEL\tBATTERY")
			for _, p := range products {
				req := domain.RequirementText(p.BuyerRequirement)
				if req == "" {
					req = "None"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%.0f h\n",
					p.Name, price(p.Price), p.Color, req, p.AIModel, p.BatteryHours)
			}
			return w.Flush()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Clear the comparison list",
		RunE: func(cmd *cobra.Command, args []string) error {
			return pages.NewComparePage(a.deps).Clear()
		},
	})

	return cmd
}

func printCart(view *pages.CartView) {
	if len(view.Lines) == 0 {
		fmt.Println("Your cart is empty")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tQTY\tUNIT\tLINE")
	for _, l := range view.Lines {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n",
			l.ProductID, l.Name, l.Quantity, price(l.UnitPrice), price(l.UnitPrice*float64(l.Quantity)))
	}
	w.Flush()
	fmt.Printf("Subtotal %s\nShipping Free\nTax (8%%) %s\nTotal %s\n",
		price(view.Totals.Subtotal), price(view.Totals.Tax), price(view.Totals.Total))
}

func newCartCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the shopping cart",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the cart with totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			page := &pages.CartPage{Deps: a.deps}
			view, err := page.Load(a.ctx())
			if err != nil {
				return err
			}
			printCart(view)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <product-id>",
		Short: "Add one unit of a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			page := &pages.CartPage{Deps: a.deps}
			view, err := page.Add(a.ctx(), id)
			if err != nil {
				return err
			}
			fmt.Println("Added to cart!")
			printCart(view)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "update <product-id> <quantity>",
		Short: "Set a line's quantity (0 removes it)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			qty, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}
			page := &pages.CartPage{Deps: a.deps}
			view, err := page.UpdateQuantity(a.ctx(), id, qty)
			if err != nil {
				return err
			}
			printCart(view)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove all items",
		RunE: func(cmd *cobra.Command, args []string) error {
			page := &pages.CartPage{Deps: a.deps}
			if err := page.Clear(a.ctx()); err != nil {
				return err
			}
			fmt.Println("Cart cleared")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "badge",
		Short: "Show the cart badge count",
		RunE: func(cmd *cobra.Command, args []string) error {
			page := &pages.CartPage{Deps: a.deps}
			fmt.Println(page.Badge(a.ctx()))
			return nil
		},
	})

	return cmd
}

func newCheckoutCmd(a *app) *cobra.Command {
	var addr apiclient.ShippingAddress
	var review bool
	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Review the order and place it",
		RunE: func(cmd *cobra.Command, args []string) error {
			page := &pages.CheckoutPage{Deps: a.deps}

			view, err := page.Load(a.ctx())
			if err != nil {
				return err
			}
			printCart(&pages.CartView{Lines: view.Lines, Totals: view.Totals})
			if review {
				return nil
			}

			if addr.Address == "" {
				addr = apiclient.ShippingAddress{
					Address: view.Profile.Address,
					City:    view.Profile.City,
					State:   view.Profile.State,
					Zip:     view.Profile.Zip,
				}
			}
			order, err := page.PlaceOrder(a.ctx(), addr)
			if err != nil {
				return err
			}
			fmt.Printf("Order #%d placed, total %s\n", order.OrderID, price(order.OrderTotal))
			return nil
		},
	}
	cmd.Flags().BoolVar(&review, "review", false, "show the order review without placing it")
	cmd.Flags().StringVar(&addr.Address, "address", "", "shipping address (defaults to profile)")
	cmd.Flags().StringVar(&addr.City, "city", "", "shipping city")
	cmd.Flags().StringVar(&addr.State, "state", "", "shipping state")
	cmd.Flags().StringVar(&addr.Zip, "zip", "", "shipping zip")
	return cmd
}

func newOrdersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "orders [id]",
		Short: "Show order history",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page := &pages.ProfilePage{Deps: a.deps}

			if len(args) == 1 {
				id, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid order id %q", args[0])
				}
				order, err := page.Order(a.ctx(), id)
				if err != nil {
					return err
				}
				fmt.Printf("Order #%d  %s  %s\n%s, %s, %s %s\n",
					order.OrderID, order.Date, price(order.OrderTotal),
					order.Address, order.City, order.State, order.Zip)
				for _, li := range order.LineItems {
					fmt.Printf("  product %d x%d @ %s\n", li.ProductID, li.Quantity, price(li.SalesPrice))
				}
				return nil
			}

			orders, err := page.Orders(a.ctx())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDATE\tTOTAL\tSHIP TO")
			for _, o := range orders {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s, %s\n", o.OrderID, o.Date, price(o.OrderTotal), o.City, o.State)
			}
			return w.Flush()
		},
	}
}

func newProfileCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update the profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			page := &pages.ProfilePage{Deps: a.deps}
			p, err := page.Get(a.ctx())
			if err != nil {
				return err
			}
			fmt.Printf("%s %s <%s>\nAccount type: %s\n%s, %s, %s %s\n",
				p.FirstName, p.LastName, p.Email, p.AccountType, p.Address, p.City, p.State, p.Zip)
			return nil
		},
	}

	var update models.Profile
	updateCmd := &cobra.Command{
		Use:   "update",
		Short: "Update profile fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			page := &pages.ProfilePage{Deps: a.deps}
			current, err := page.Get(a.ctx())
			if err != nil {
				return err
			}
			merged := *current
			if update.Email != "" {
				merged.Email = update.Email
			}
			if update.Phone != "" {
				merged.Phone = update.Phone
			}
			if update.Address != "" {
				merged.Address = update.Address
			}
			if update.City != "" {
				merged.City = update.City
			}
			if update.State != "" {
				merged.State = update.State
			}
			if update.Zip != "" {
				merged.Zip = update.Zip
			}
			if _, err := page.Update(a.ctx(), merged); err != nil {
				return err
			}
			fmt.Println("Profile updated")
			return nil
		},
	}
	updateCmd.Flags().StringVar(&update.Email, "email", "", "email")
	updateCmd.Flags().StringVar(&update.Phone, "phone", "", "phone")
	updateCmd.Flags().StringVar(&update.Address, "address", "", "address")
	updateCmd.Flags().StringVar(&update.City, "city", "", "city")
	updateCmd.Flags().StringVar(&update.State, "state", "", "state")
	updateCmd.Flags().StringVar(&update.Zip, "zip", "", "zip")
	cmd.AddCommand(updateCmd)

	return cmd
}

func newJobsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "jobs [id]",
		Short: "List open positions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page := &pages.CareersPage{Deps: a.deps}

			if len(args) == 1 {
				id, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid job id %q", args[0])
				}
				job, err := page.Job(a.ctx(), id)
				if err != nil {
					return err
				}
				fmt.Printf("%s (%s, %s)\n%s\n", job.Title, job.Department, job.Location, job.Description)
				return nil
			}

			jobs, err := page.Jobs(a.ctx())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tDEPARTMENT\tLOCATION")
			for _, j := range jobs {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", j.JobID, j.Title, j.Department, j.Location)
			}
			return w.Flush()
		},
	}
}

func newApplyCmd(a *app) *cobra.Command {
	var form models.JobApplication
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Submit a job application",
		RunE: func(cmd *cobra.Command, args []string) error {
			page := &pages.CareersPage{Deps: a.deps}
			if _, err := page.Apply(a.ctx(), form); err != nil {
				return err
			}
			fmt.Println("Application submitted. We'll be in touch!")
			return nil
		},
	}
	cmd.Flags().IntVar(&form.JobID, "job", 0, "job id")
	cmd.Flags().StringVar(&form.ApplicantName, "name", "", "applicant name")
	cmd.Flags().StringVar(&form.Email, "email", "", "email")
	cmd.Flags().StringVar(&form.Phone, "phone", "", "phone")
	cmd.Flags().StringVar(&form.ResumeURL, "resume", "", "resume link")
	cmd.Flags().StringVar(&form.CoverLetter, "cover", "", "cover letter")
	return cmd
}

func newContactCmd(a *app) *cobra.Command {
	var inq models.SalesInquiry
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Send a sales inquiry",
		RunE: func(cmd *cobra.Command, args []string) error {
			page := &pages.ContactPage{Deps: a.deps}
			if _, err := page.Submit(a.ctx(), inq); err != nil {
				return err
			}
			fmt.Println("Inquiry sent. Our sales team will reach out shortly.")
			return nil
		},
	}
	cmd.Flags().IntVar(&inq.ProductID, "product", 0, "product id the inquiry is about")
	cmd.Flags().StringVar(&inq.ContactName, "name", "", "contact name")
	cmd.Flags().StringVar(&inq.CompanyName, "company", "", "company name")
	cmd.Flags().StringVar(&inq.Email, "email", "", "email")
	cmd.Flags().StringVar(&inq.Phone, "phone", "", "phone")
	cmd.Flags().StringVar(&inq.Message, "message", "", "message")
	return cmd
}

func newAdminCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Back-office listings",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "orders",
		Short: "List all orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			page := &pages.AdminPage{Deps: a.deps}
			orders, err := page.Orders(a.ctx())
			if err != nil {
				return err
			}
			for _, o := range orders {
				fmt.Printf("#%d user %d %s %s\n", o.OrderID, o.UserID, o.Date, price(o.OrderTotal))
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "applications",
		Short: "List job applications",
		RunE: func(cmd *cobra.Command, args []string) error {
			page := &pages.AdminPage{Deps: a.deps}
			apps, err := page.Applications(a.ctx())
			if err != nil {
				return err
			}
			for _, ja := range apps {
				fmt.Printf("#%d job %d %s <%s> %s\n", ja.ApplicationID, ja.JobID, ja.ApplicantName, ja.Email, ja.Status)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "inquiries",
		Short: "List sales inquiries",
		RunE: func(cmd *cobra.Command, args []string) error {
			page := &pages.AdminPage{Deps: a.deps}
			inqs, err := page.Inquiries(a.ctx())
			if err != nil {
				return err
			}
			for _, inq := range inqs {
				fmt.Printf("#%d %s (%s) <%s>: %s\n", inq.InquiryID, inq.ContactName, inq.CompanyName, inq.Email, inq.Message)
			}
			return nil
		},
	})

	return cmd
}
