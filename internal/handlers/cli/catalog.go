package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/gabapcia/orderwatch/internal/catalog"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

func formatTimestamp(ts uint64) string {
	return time.Unix(int64(ts), 0).UTC().Format(timeLayout)
}

func catalogsCommand(svc Services) *cli.Command {
	return &cli.Command{
		Name:        "catalogs",
		Description: "Refresh and print every catalog the seller uploaded, oldest first.",
		Usage:       "Lists catalogs and their products.",
		Action: func(ctx context.Context, c *cli.Command) error {
			snap, err := refreshed(ctx, c, svc)
			if err != nil {
				return err
			}

			for _, cat := range snap.Catalogs {
				renderCatalog(stdout(c), cat)
			}
			return nil
		},
	}
}

func renderCatalog(w io.Writer, cat catalog.Catalog) {
	fmt.Fprintf(w, "catalog %s uploaded %s\n", cat.Link, formatTimestamp(cat.Timestamp))

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Product", "Quantity", "Price", "Shipping", "Total", "Ships in"})
	for _, p := range cat.Products {
		table.Append([]string{
			strconv.Itoa(p.ID),
			p.CompoundName,
			p.Quantity,
			p.Price.StringFixed(2),
			p.ShippingCost.StringFixed(2),
			p.Total().StringFixed(2),
			fmt.Sprintf("%d days", p.ShipTime),
		})
	}
	table.Render()
}

// uploadCommand publishes a catalog document.
//
//	orderwatch upload --file catalog.csv --dry-run
func uploadCommand(svc Services) *cli.Command {
	return &cli.Command{
		Name:        "upload",
		Description: "Publish a catalog: store the compressed document on chain and register it with the marketplace.",
		Usage:       "Uploads a catalog file. With --dry-run only the cost estimate is printed.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Usage:    "Catalog document, plain or gzip compressed",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Print the estimated cost without sending anything",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			sess, err := currentSession(ctx, svc)
			if err != nil {
				return err
			}

			document, err := os.ReadFile(c.String("file"))
			if err != nil {
				return err
			}

			cost, err := svc.Actions.EstimateUploadCost(ctx, sess, document)
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout(c), "estimated cost: %s ETH (%d gas)\n", cost.ETH().String(), cost.Gas)

			if c.Bool("dry-run") {
				return nil
			}

			receipt, err := svc.Actions.UploadCatalog(ctx, sess, document)
			if err != nil {
				return err
			}

			fmt.Fprintf(stdout(c), "catalog %s registered in transaction %s (block %d, %d gas)\n",
				receipt.DataTxHash.Hex(), receipt.TxHash.Hex(), receipt.BlockNumber, receipt.GasUsed)
			return nil
		},
	}
}

func uploadsCommand(svc Services) *cli.Command {
	return &cli.Command{
		Name:        "uploads",
		Description: "List the catalogs the seller registered with the marketplace.",
		Usage:       "Lists catalog uploads.",
		Action: func(ctx context.Context, c *cli.Command) error {
			sess, err := currentSession(ctx, svc)
			if err != nil {
				return err
			}

			uploads, err := svc.Actions.ListUploads(ctx, sess)
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(stdout(c))
			table.SetHeader([]string{"Link", "Uploaded"})
			for _, u := range uploads {
				table.Append([]string{u.Link, formatTimestamp(u.Timestamp)})
			}
			table.Render()
			return nil
		},
	}
}
