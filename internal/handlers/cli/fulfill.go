package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/orderwatch/internal/selleractions"

	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli/v3"
)

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrAlreadyFulfilled = errors.New("order already fulfilled")
)

// fulfillCommand seals the shipping details for the buyer and replies to the order.
//
//	orderwatch fulfill --order 0x... --tracking-url https://... --message "shipped"
func fulfillCommand(svc Services) *cli.Command {
	return &cli.Command{
		Name:        "fulfill",
		Description: "Reply to an order with tracking details encrypted for the buyer.",
		Usage:       "Fulfills an order. With --dry-run only the cost estimate is printed.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "order",
				Usage:    "Hash of the purchase transaction",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "tracking-url",
				Usage: "Shipment tracking URL",
			},
			&cli.StringFlag{
				Name:  "message",
				Usage: "Message for the buyer",
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

			snap, err := refreshed(ctx, c, svc)
			if err != nil {
				return err
			}

			hash := common.HexToHash(c.String("order"))
			o, ok := snap.Find(hash)
			if !ok {
				return fmt.Errorf("%w: %s", ErrOrderNotFound, hash.Hex())
			}
			if o.Fulfilled() {
				return fmt.Errorf("%w: reply %s", ErrAlreadyFulfilled, o.ReplyTxHash.Hex())
			}

			f := selleractions.Fulfillment{
				OrderTxHash: o.TxHash.Hex(),
				TrackingURL: c.String("tracking-url"),
				Message:     c.String("message"),
			}

			cost, err := svc.Actions.EstimateFulfillCost(ctx, sess, o, f)
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout(c), "estimated cost: %s ETH (%d gas)\n", cost.ETH().String(), cost.Gas)

			if c.Bool("dry-run") {
				return nil
			}

			receipt, err := svc.Actions.Fulfill(ctx, sess, o, f)
			if err != nil {
				return err
			}

			fmt.Fprintf(stdout(c), "order %s fulfilled in transaction %s (block %d)\n",
				o.TxHash.Hex(), receipt.TxHash.Hex(), receipt.BlockNumber)
			return nil
		},
	}
}
