package cli

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newLoginCmd(wrap wrapper) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session",
		Args:  cobra.NoArgs,
		RunE: wrap(func(ctx context.Context, a *app, _ *cobra.Command, _ []string) error {
			var err error
			if email, err = a.prompt(email, "Email"); err != nil {
				return err
			}
			if password, err = a.prompt(password, "Password"); err != nil {
				return err
			}
			_, err = a.authPages().Login(ctx, email, password)
			return err
		}),
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when omitted)")
	return cmd
}

func newSignupCmd(wrap wrapper) *cobra.Command {
	var name, email, password string
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and sign in",
		Args:  cobra.NoArgs,
		RunE: wrap(func(ctx context.Context, a *app, _ *cobra.Command, _ []string) error {
			var err error
			if name, err = a.prompt(name, "Full name"); err != nil {
				return err
			}
			if email, err = a.prompt(email, "Email"); err != nil {
				return err
			}
			if password, err = a.prompt(password, "Password"); err != nil {
				return err
			}
			_, err = a.authPages().Signup(ctx, name, email, password)
			return err
		}),
	}
	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when omitted)")
	return cmd
}

func newLogoutCmd(wrap wrapper) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: wrap(func(_ context.Context, a *app, _ *cobra.Command, _ []string) error {
			_, err := a.session.Logout()
			return err
		}),
	}
}

func newWhoamiCmd(authed wrapper) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: authed(func(ctx context.Context, a *app, _ *cobra.Command, _ []string) error {
			user, err := a.settings().Load(ctx)
			if err != nil {
				return err
			}
			return a.printer.user(user)
		}),
	}
}

func newPasswordCmd(wrap, authed wrapper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Change, forget or reset a password",
	}

	var current, next, confirm string
	change := &cobra.Command{
		Use:   "change",
		Short: "Change the password of the signed-in user",
		Args:  cobra.NoArgs,
		RunE: authed(func(ctx context.Context, a *app, _ *cobra.Command, _ []string) error {
			var err error
			if current, err = a.prompt(current, "Current password"); err != nil {
				return err
			}
			if next, err = a.prompt(next, "New password"); err != nil {
				return err
			}
			if confirm, err = a.prompt(confirm, "Confirm new password"); err != nil {
				return err
			}
			return a.settings().ChangePassword(ctx, current, next, confirm)
		}),
	}
	change.Flags().StringVar(&current, "current", "", "current password")
	change.Flags().StringVar(&next, "new", "", "new password")
	change.Flags().StringVar(&confirm, "confirm", "", "new password again")

	forgot := &cobra.Command{
		Use:   "forgot <email>",
		Short: "Send a password reset link",
		Args:  cobra.ExactArgs(1),
		RunE: wrap(func(ctx context.Context, a *app, _ *cobra.Command, args []string) error {
			return a.authPages().ForgotPassword(ctx, args[0])
		}),
	}

	var resetNew, resetConfirm string
	reset := &cobra.Command{
		Use:   "reset <token>",
		Short: "Set a new password with a reset token",
		Args:  cobra.ExactArgs(1),
		RunE: wrap(func(ctx context.Context, a *app, _ *cobra.Command, args []string) error {
			var err error
			if resetNew, err = a.prompt(resetNew, "New password"); err != nil {
				return err
			}
			if resetConfirm, err = a.prompt(resetConfirm, "Confirm password"); err != nil {
				return err
			}
			_, err = a.authPages().ResetPassword(ctx, args[0], resetNew, resetConfirm)
			return err
		}),
	}
	reset.Flags().StringVar(&resetNew, "new", "", "new password")
	reset.Flags().StringVar(&resetConfirm, "confirm", "", "new password again")

	cmd.AddCommand(change, forgot, reset)
	return cmd
}

func newAvatarCmd(authed wrapper) *cobra.Command {
	return &cobra.Command{
		Use:   "avatar <file>",
		Short: "Upload a profile picture",
		Args:  cobra.ExactArgs(1),
		RunE: authed(func(ctx context.Context, a *app, _ *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open image: %w", err)
			}
			defer f.Close()

			info, err := f.Stat()
			if err != nil {
				return fmt.Errorf("failed to stat image: %w", err)
			}
			contentType, err := sniffContentType(f, args[0])
			if err != nil {
				return err
			}

			user, err := a.settings().UploadAvatar(ctx, filepath.Base(args[0]), contentType, info.Size(), f)
			if err != nil {
				return err
			}
			return a.printer.user(user)
		}),
	}
}

// sniffContentType inspects the first bytes of f and rewinds it. The file
// extension is used when the bytes are inconclusive.
func sniffContentType(f io.ReadSeeker, name string) (string, error) {
	head := make([]byte, 512)
	n, err := f.Read(head)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to rewind image: %w", err)
	}
	contentType := http.DetectContentType(head[:n])
	if contentType == "application/octet-stream" {
		if byExt := mime.TypeByExtension(filepath.Ext(name)); byExt != "" {
			contentType = byExt
		}
	}
	return contentType, nil
}
