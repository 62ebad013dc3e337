package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gabapcia/orderwatch/internal/notice"
	"github.com/gabapcia/orderwatch/internal/refresh"
	"github.com/gabapcia/orderwatch/internal/selleractions"
	"github.com/gabapcia/orderwatch/internal/session"

	"github.com/urfave/cli/v3"
)

// ErrNotLoggedIn is returned by commands that act as the seller when no session exists.
var ErrNotLoggedIn = errors.New("not logged in, run the login command first")

// Services groups the domain services the commands call into.
type Services struct {
	Session session.Service
	Refresh refresh.Service
	Actions selleractions.Service
	Notices notice.Queue
}

// NewApp builds the orderwatch command tree.
//
//   - `login` / `logout`: manage the seller session.
//   - `refresh`: rebuild orders and catalogs once.
//   - `orders` / `catalogs`: refresh and print.
//   - `start`: keep refreshing in the background until interrupted.
//   - `fulfill`: reply to an order.
//   - `upload` / `uploads`: publish a catalog and list published ones.
func NewApp(svc Services) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "orderwatch",
		Description:           "Seller-side order ingestion and reconciliation for the marketplace contract.",
		Usage:                 "orderwatch [command] [flags]",
		Commands: []*cli.Command{
			loginCommand(svc),
			logoutCommand(svc),
			refreshCommand(svc),
			ordersCommand(svc),
			catalogsCommand(svc),
			startCommand(svc),
			fulfillCommand(svc),
			uploadCommand(svc),
			uploadsCommand(svc),
		},
	}
}

// Run executes the CLI with the process arguments.
func Run(ctx context.Context, svc Services) error {
	return NewApp(svc).Run(ctx, os.Args)
}

func stdout(c *cli.Command) io.Writer {
	if w := c.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func stderr(c *cli.Command) io.Writer {
	if w := c.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}

// currentSession returns the logged in seller or ErrNotLoggedIn.
func currentSession(ctx context.Context, svc Services) (session.Session, error) {
	sess, err := svc.Session.Current(ctx)
	if errors.Is(err, session.ErrNoSession) {
		return session.Session{}, ErrNotLoggedIn
	}
	return sess, err
}

// refreshed runs a refresh and returns the resulting snapshot. Pending notices
// are printed even when the refresh fails.
func refreshed(ctx context.Context, c *cli.Command, svc Services) (refresh.Snapshot, error) {
	if _, err := currentSession(ctx, svc); err != nil {
		return refresh.Snapshot{}, err
	}

	err := svc.Refresh.Refresh(ctx)
	printNotices(c, svc)
	if err != nil {
		return refresh.Snapshot{}, err
	}

	return svc.Refresh.Snapshot(), nil
}

func printNotices(c *cli.Command, svc Services) {
	for _, n := range svc.Notices.List() {
		fmt.Fprintf(stderr(c), "notice: %s\n", n.Message)
	}
}
