package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gabapcia/orderwatch/internal/order"
	"github.com/gabapcia/orderwatch/internal/refresh"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

const timeLayout = time.RFC3339

func refreshCommand(svc Services) *cli.Command {
	return &cli.Command{
		Name:        "refresh",
		Description: "Rebuild orders and catalogs from the ledger and the explorer.",
		Usage:       "Runs a single refresh and prints a summary.",
		Action: func(ctx context.Context, c *cli.Command) error {
			snap, err := refreshed(ctx, c, svc)
			if err != nil {
				return err
			}

			fmt.Fprintf(stdout(c), "%d orders (%d pending), %d catalogs, refreshed at %s\n",
				len(snap.Orders), len(snap.Pending()), len(snap.Catalogs), snap.RefreshedAt.Format(timeLayout))
			return nil
		},
	}
}

// ordersCommand prints the seller's orders with the payment reconciled
// against the catalog in effect when each order was placed.
//
//	orderwatch orders --pending
func ordersCommand(svc Services) *cli.Command {
	return &cli.Command{
		Name:        "orders",
		Description: "Refresh and list the orders addressed to the seller.",
		Usage:       "Lists orders with their payment reconciliation and fulfillment status.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "pending",
				Usage: "Only list orders without a reply",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			snap, err := refreshed(ctx, c, svc)
			if err != nil {
				return err
			}

			orders := snap.Orders
			if c.Bool("pending") {
				orders = snap.Pending()
			}

			renderOrders(stdout(c), snap, orders)
			return nil
		},
	}
}

func renderOrders(w io.Writer, snap refresh.Snapshot, orders []order.Order) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Order", "Created", "Product", "Quantity", "Paid", "Expected", "Status", "Other", "Reply"})

	for _, o := range orders {
		r := snap.Reconcile(o)

		expected := "unknown"
		if r.Known() {
			expected = r.Expected.StringFixed(2)
		}

		reply := "pending"
		if o.Fulfilled() {
			reply = o.ReplyTxHash.Hex()
		}

		table.Append([]string{
			o.TxHash.Hex(),
			o.CreatedAt.UTC().Format(timeLayout),
			o.Product.CompoundName,
			o.Product.Quantity,
			r.Received.StringFixed(2),
			expected,
			string(r.Status),
			otherAssets(o.Payment),
			reply,
		})
	}

	table.Render()
}

// otherAssets describes the non-stablecoin part of a payment.
func otherAssets(p order.Payment) string {
	var out string
	for _, sym := range p.Symbols() {
		if sym == order.USDC || sym == order.USDT {
			continue
		}
		if out != "" {
			out += " "
		}
		out += fmt.Sprintf("%s %s", p.Amount(sym).String(), sym)
	}
	return out
}

// startCommand keeps the snapshot fresh in the background.
//
// The process runs until it receives SIGINT or SIGTERM.
func startCommand(svc Services) *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Refresh orders and catalogs periodically in the background.",
		Usage:       "Runs the refresh loop. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			quit := make(chan os.Signal, 1)
			defer close(quit)

			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			if err := svc.Refresh.Start(ctx); err != nil {
				return err
			}
			defer svc.Refresh.Close()

			select {
			case <-quit:
			case <-ctx.Done():
			}
			return nil
		},
	}
}
