package cli

import (
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-shop-api/models"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func (c *client) productsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"product"},
		Short:   "Manage products",
	}

	cmd.AddCommand(
		c.productCreateCmd(),
		c.productListCmd(),
		c.productGetCmd(),
		c.productUpdateCmd(),
		c.productDeleteCmd(),
	)

	return cmd
}

// productFlags binds the product fields as flags. Only flags that were set on
// the command line end up in the request.
type productFlags struct {
	category    string
	title       string
	description string
	price       float64
	quantity    int64
	img         string
	clearImg    bool
}

func (p *productFlags) bind(flags *pflag.FlagSet) {
	flags.StringVar(&p.category, "category", "", "product category")
	flags.StringVar(&p.title, "title", "", "product title")
	flags.StringVar(&p.description, "description", "", "product description")
	flags.Float64Var(&p.price, "price", 0, "unit price")
	flags.Int64Var(&p.quantity, "quantity", 0, "quantity in stock")
	flags.StringVar(&p.img, "img", "", "product image reference")
}

func (p *productFlags) bindClear(flags *pflag.FlagSet) {
	flags.BoolVar(&p.clearImg, "clear-img", false, "remove the product image")
}

func (p *productFlags) request(flags *pflag.FlagSet) models.ProductRequest {
	var request models.ProductRequest
	if flags.Changed("category") {
		request.Category = &p.category
	}
	if flags.Changed("title") {
		request.Title = &p.title
	}
	if flags.Changed("description") {
		request.Description = &p.description
	}
	if flags.Changed("price") {
		request.Price = &p.price
	}
	if flags.Changed("quantity") {
		request.Quantity = &p.quantity
	}
	if flags.Changed("img") {
		request.ProductImg = &p.img
	} else if p.clearImg {
		request.ProductImgSet = true
	}
	return request
}

func parseProductID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid product id %q", arg)
	}
	return id, nil
}

func (c *client) productCreateCmd() *cobra.Command {
	var fields productFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a product owned by the authenticated user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.adapter.CreateProduct(cmd.Context(), fields.request(cmd.Flags()))
			if err != nil {
				return err
			}
			return c.print(resp)
		},
	}
	fields.bind(cmd.Flags())

	return cmd
}

func (c *client) productListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := c.adapter.ListProducts(cmd.Context())
			if err != nil {
				return err
			}
			if products == nil {
				products = []models.Product{}
			}
			return c.print(products)
		},
	}
}

func (c *client) productGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProductID(args[0])
			if err != nil {
				return err
			}

			product, err := c.adapter.GetProduct(cmd.Context(), id)
			if err != nil {
				return err
			}
			return c.print(product)
		},
	}
}

func (c *client) productUpdateCmd() *cobra.Command {
	var fields productFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update the given fields of a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProductID(args[0])
			if err != nil {
				return err
			}

			if fields.clearImg && cmd.Flags().Changed("img") {
				return fmt.Errorf("--img and --clear-img cannot be combined")
			}

			resp, err := c.adapter.UpdateProduct(cmd.Context(), id, fields.request(cmd.Flags()))
			if err != nil {
				return err
			}
			return c.print(resp)
		},
	}
	fields.bind(cmd.Flags())
	fields.bindClear(cmd.Flags())

	return cmd
}

func (c *client) productDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProductID(args[0])
			if err != nil {
				return err
			}

			resp, err := c.adapter.DeleteProduct(cmd.Context(), id)
			if err != nil {
				return err
			}
			return c.print(resp)
		},
	}
}
