package donate

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/AlexZinkM/donate-action/internal/model"
)

// PresetAmounts are the fixed donation buttons, in display order.
var PresetAmounts = []string{"0.1", "1", "2", "5"}

// ActionMeta is the static part of the action descriptor.
type ActionMeta struct {
	Icon        string
	Title       string
	Description string
	Label       string
}

// MetaFor returns the descriptor text for a beneficiary.
func MetaFor(beneficiary, icon string) ActionMeta {
	return ActionMeta{
		Icon:        icon,
		Title:       fmt.Sprintf("Donate to %s", beneficiary),
		Description: fmt.Sprintf("Support %s by donating SOL.", beneficiary),
		Label:       "Donate",
	}
}

// NewActionDescriptor builds the GET response: four preset amounts and one
// free-form amount, all pointing back at href.
func NewActionDescriptor(href string, meta ActionMeta) model.ActionGetResponse {
	actions := make([]model.LinkedAction, 0, len(PresetAmounts)+1)
	for _, amount := range PresetAmounts {
		actions = append(actions, model.LinkedAction{
			Type:  model.LinkedActionTypeTransaction,
			Label: fmt.Sprintf("Donate %s SOL", amount),
			Href:  href + "?amount=" + amount,
		})
	}
	actions = append(actions, model.LinkedAction{
		Type:  model.LinkedActionTypeTransaction,
		Label: "Donate SOL",
		Href:  href + "?amount={amount}",
		Parameters: []model.ActionParameter{
			{
				Name:     "amount",
				Label:    "Enter the amount you want to donate",
				Required: true,
			},
		},
	})

	return model.ActionGetResponse{
		Type:        model.ActionTypeAction,
		Icon:        meta.Icon,
		Title:       meta.Title,
		Description: meta.Description,
		Label:       meta.Label,
		Links:       &model.ActionLinks{Actions: actions},
	}
}

// RequestHref returns the absolute URL of path on the host r was sent to.
// An empty path means r's own path; the query is never carried over.
// baseURL, when set, replaces the scheme and host (for deployments behind a
// proxy that rewrites Host).
func RequestHref(r *http.Request, baseURL, path string) string {
	if path == "" {
		path = r.URL.Path
	}
	if baseURL != "" {
		return strings.TrimRight(baseURL, "/") + path
	}

	scheme := "http"
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme, _, _ = strings.Cut(proto, ",")
		scheme = strings.TrimSpace(scheme)
	} else if r.TLS != nil {
		scheme = "https"
	}

	u := url.URL{Scheme: scheme, Host: r.Host, Path: path}
	return u.String()
}

// ActionRules returns the actions.json document that maps the site's donate
// page onto the action API.
func ActionRules(apiPath string) model.ActionsJSON {
	return model.ActionsJSON{
		Rules: []model.ActionRule{
			{PathPattern: "/donate", APIPath: apiPath},
			{PathPattern: apiPath, APIPath: apiPath},
		},
	}
}
