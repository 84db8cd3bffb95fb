package webhook

import "os"

// Env configures the optional HTTP audit collector. The sink is disabled
// when AUDIT_WEBHOOK_URL is not set.
type Env struct {
	Endpoint string
	Token    string
}

func NewWebhookEnv() *Env {
	return &Env{}
}

func (w *Env) Populate() error {
	w.Endpoint = os.Getenv("AUDIT_WEBHOOK_URL")
	w.Token = os.Getenv("AUDIT_WEBHOOK_TOKEN")

	return nil
}

func (w *Env) Enabled() bool {
	return w.Endpoint != ""
}
