package credential

import (
	"context"
	"log/slog"

	"podly/internal/api"
	"podly/internal/notify"
	"podly/internal/session"
)

// loginClient is the slice of the API client the gate needs.
type loginClient interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, req api.RegisterRequest) error
}

// Gate exchanges validated credentials for a token and hands it to the
// session store. All outcomes are surfaced through the notification channel;
// no error escapes to the caller.
type Gate struct {
	client  loginClient
	session *session.Store
	notify  *notify.Channel
}

// NewGate wires the credential gate to its collaborators.
func NewGate(client loginClient, sess *session.Store, ch *notify.Channel) *Gate {
	return &Gate{client: client, session: sess, notify: ch}
}

// SubmitLogin posts credentials to the identity service. It returns true
// when the form should close (a token was issued), false when it should stay
// open with its input intact.
func (g *Gate) SubmitLogin(ctx context.Context, email, password string) bool {
	token, err := g.client.Login(ctx, email, password)
	if err != nil {
		g.notify.Show(api.UserMessage(err), notify.SeverityError)
		return false
	}

	if err := g.session.Login(ctx, token); err != nil {
		// Token persisted but the profile fetch failed; the session will
		// resolve on the next initialize.
		slog.Debug("Profile fetch after login failed", "error", err)
		g.notify.Show("logged in, but your profile could not be loaded", notify.SeverityWarning)
		return true
	}

	g.notify.Show("welcome back", notify.SeveritySuccess)
	return true
}

// SubmitRegister posts the registration payload. On success the form is
// switched back to login mode with all fields cleared; on failure it stays
// open and populated.
func (g *Gate) SubmitRegister(ctx context.Context, form *Form) bool {
	req := api.RegisterRequest{
		Email:       form.Value(FieldEmail),
		Password:    form.Value(FieldPassword),
		DisplayName: form.Value(FieldDisplayName),
		Phone:       form.Value(FieldPhone),
	}
	if err := g.client.Register(ctx, req); err != nil {
		g.notify.Show(api.UserMessage(err), notify.SeverityError)
		return false
	}

	form.Reset()
	form.SetMode(ModeLogin)
	g.notify.Show("account created, please log in", notify.SeveritySuccess)
	return true
}
