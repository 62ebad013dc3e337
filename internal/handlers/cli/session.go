package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// loginCommand stores the seller key after checking that the derived address
// is an approved seller.
//
//	orderwatch login --private-key 0x...
func loginCommand(svc Services) *cli.Command {
	return &cli.Command{
		Name:        "login",
		Description: "Store the seller private key after checking the address is an approved seller.",
		Usage:       "Logs in as a seller. The key may also be given with ORDERWATCH_PRIVATE_KEY.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "private-key",
				Usage:    "Hex encoded secp256k1 private key",
				Sources:  cli.EnvVars("ORDERWATCH_PRIVATE_KEY"),
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			sess, err := svc.Session.Login(ctx, c.String("private-key"))
			if err != nil {
				return err
			}

			fmt.Fprintf(stdout(c), "logged in as %s\n", sess.Address.Hex())
			fmt.Fprintf(stdout(c), "public key %s\n", sess.PublicKey)
			return nil
		},
	}
}

func logoutCommand(svc Services) *cli.Command {
	return &cli.Command{
		Name:        "logout",
		Description: "Forget the stored seller session.",
		Usage:       "Logs out.",
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := svc.Session.Logout(ctx); err != nil {
				return err
			}

			fmt.Fprintln(stdout(c), "logged out")
			return nil
		},
	}
}
