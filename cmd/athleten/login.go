package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/naveenspark/athleten/internal/browser"
	"github.com/naveenspark/athleten/internal/config"
	"github.com/naveenspark/athleten/pkg/client"
)

const loginTimeout = 2 * time.Minute

func (c *cli) loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Authenticate in the browser",
		Long: `Open the browser to sign in. The session token is saved to
~/.athleten/token and sent with every request.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runLogin(cmd.Context())
		},
	}
}

func (c *cli) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear your session",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			path, err := config.TokenPath()
			if err != nil {
				return err
			}
			tokens := client.NewFileTokenStore(path)
			tok, err := tokens.Token()
			if err != nil {
				return err
			}
			if tok == "" {
				fmt.Fprintln(c.out, "Already logged out.")
				return nil
			}
			if err := tokens.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(c.out, "Logged out.")
			return nil
		},
	}
}

type callbackResult struct {
	token string
	err   error
}

// exchangeFunc trades a one-time login code for a session token.
type exchangeFunc func(ctx context.Context, code string) (string, error)

// callbackHandler serves /callback: it checks the CSRF state, exchanges the
// code and reports the outcome on results.
func callbackHandler(state string, exchange exchangeFunc, results chan<- callbackResult) http.Handler {
	report := func(res callbackResult) {
		select {
		case results <- res:
		default:
		}
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("state") != state {
			http.Error(w, "invalid state", http.StatusForbidden)
			report(callbackResult{err: errors.New("callback state mismatch (possible CSRF)")})
			return
		}
		code := r.URL.Query().Get("code")
		if code == "" {
			http.Error(w, "missing code", http.StatusBadRequest)
			report(callbackResult{err: errors.New("callback received without code")})
			return
		}
		tok, err := exchange(r.Context(), code)
		if err != nil {
			http.Error(w, "exchange failed", http.StatusInternalServerError)
			report(callbackResult{err: err})
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, callbackHTML) //nolint:errcheck
		report(callbackResult{token: tok})
	})
	return mux
}

// loginURL builds the browser sign-in URL for the callback port and state.
func loginURL(base, authRoute string, port int, state string) string {
	params := url.Values{}
	params.Set("cli_port", strconv.Itoa(port))
	params.Set("state", state)
	return base + authRoute + "?" + params.Encode()
}

func newState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate login state: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func (c *cli) runLogin(ctx context.Context) error {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return fmt.Errorf("start callback listener: %w", err)
	}
	defer listener.Close() //nolint:errcheck

	state, err := newState()
	if err != nil {
		return err
	}

	// The exchange runs before a token exists, so it uses an empty store.
	anon, err := c.newClient(client.NewMemoryTokenStore(""), nil)
	if err != nil {
		return err
	}

	// Callbacks beyond the buffer are dropped.
	results := make(chan callbackResult, 2)
	srv := &http.Server{
		Handler:           callbackHandler(state, anon.ExchangeLoginCode, results),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			results <- callbackResult{err: err}
		}
	}()
	defer func() {
		shutCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		srv.Shutdown(shutCtx) //nolint:errcheck
	}()

	port := listener.Addr().(*net.TCPAddr).Port
	u := loginURL(c.cfg.LoginBaseURL(), c.cfg.API.AuthRoute, port, state)
	c.logger.Debug("login started", zap.Int("port", port))

	fmt.Fprintln(c.out, "Opening browser to authenticate...")
	if err := browser.Open(u); err != nil {
		fmt.Fprintf(c.out, "Could not open browser. Visit this URL manually:\n  %s\n", u)
	}

	select {
	case res := <-results:
		if res.err != nil {
			return fmt.Errorf("login: %w", res.err)
		}
		path, err := config.TokenPath()
		if err != nil {
			return err
		}
		if err := client.NewFileTokenStore(path).SetToken(res.token); err != nil {
			return fmt.Errorf("save token: %w", err)
		}
		printLoggedIn(c.out, path)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(loginTimeout):
		return fmt.Errorf("login timed out: no callback received within %s", loginTimeout)
	}
}
