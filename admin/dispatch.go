// ABOUTME: Row and bulk action dispatch with nonce and capability checks.
// ABOUTME: Verification failures terminate; handler errors become notices.

package admin

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/plumline/listtable/auth"
	"github.com/plumline/listtable/notice"
	"github.com/plumline/listtable/table"
)

// rowAction dispatches one nonce-protected row action. The order matters:
// nonce first, then capability; either failure stops the request cold. A
// handler error becomes a failure notice and the redirect happens anyway.
func (h *Handlers) rowAction(w http.ResponseWriter, r *http.Request) {
	cfg, ok := table.Get(chi.URLParam(r, "table"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	a, ok := cfg.ActionByID(chi.URLParam(r, "action"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	// Link-only actions have nothing to dispatch.
	if a.Handler == nil {
		http.Redirect(w, r, cleanListURL(cfg.ID, r.URL.Query()), http.StatusSeeOther)
		return
	}

	id := r.URL.Query().Get("id")
	user := auth.UserFromContext(r.Context())

	if !h.nonces.Verify(r.URL.Query().Get("_nonce"), nonceAction(cfg.ID, a, id), user.Name) {
		http.Error(w, "invalid or expired nonce", http.StatusForbidden)
		return
	}

	capability := a.Capability
	if capability == "" {
		capability = cfg.Capability
	}
	if !user.Can(capability) {
		http.Error(w, "insufficient permissions", http.StatusForbidden)
		return
	}

	n := notice.Notice{Action: a.ID, Success: true, Result: id}
	if err := a.Handler(r.Context(), id); err != nil {
		h.log.Error("row action failed", "table", cfg.ID, "action", a.ID, "id", id, "error", err)
		n.Success = false
	}

	http.Redirect(w, r, redirectURL(cfg.ID, r.URL.Query(), n), http.StatusSeeOther)
}

// bulkAction applies one bulk action to the selected ids. Definitions with a
// Handler get the whole selection at once; PerItem definitions run id by id,
// skipping failures. Tables without a matching definition fall back to the
// Process callback.
func (h *Handlers) bulkAction(w http.ResponseWriter, r *http.Request) {
	cfg, ok := table.Get(chi.URLParam(r, "table"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form", http.StatusBadRequest)
		return
	}

	actionID := r.PostFormValue("action")
	ids := r.PostForm["ids"]
	user := auth.UserFromContext(r.Context())

	if !h.nonces.Verify(r.PostFormValue("_nonce"), bulkNonceAction(cfg.ID), user.Name) {
		http.Error(w, "invalid or expired nonce", http.StatusForbidden)
		return
	}

	// Nothing selected or no action chosen: back to the list, no notice.
	if actionID == "" || len(ids) == 0 {
		http.Redirect(w, r, cleanListURL(cfg.ID, r.URL.Query()), http.StatusSeeOther)
		return
	}

	def, defined := cfg.BulkActionByID(actionID)

	capability := cfg.Capability
	if defined && def.Capability != "" {
		capability = def.Capability
	}
	if !user.Can(capability) {
		http.Error(w, "insufficient permissions", http.StatusForbidden)
		return
	}

	n := notice.Notice{Action: actionID, Success: true}

	switch {
	case defined && def.Handler != nil:
		if err := def.Handler(r.Context(), ids); err != nil {
			h.log.Error("bulk action failed", "table", cfg.ID, "action", actionID, "count", len(ids), "error", err)
			n.Success = false
		} else {
			n.Result = strconv.Itoa(len(ids))
		}

	case defined && def.PerItem != nil:
		processed := 0
		for _, id := range ids {
			if err := def.PerItem(r.Context(), id); err != nil {
				h.log.Debug("bulk item skipped", "table", cfg.ID, "action", actionID, "id", id, "error", err)
				continue
			}
			processed++
		}
		n.Result = strconv.Itoa(processed)

	case cfg.Callbacks.Process != nil:
		if err := cfg.Callbacks.Process(r.Context(), actionID, ids); err != nil {
			h.log.Error("bulk process failed", "table", cfg.ID, "action", actionID, "count", len(ids), "error", err)
			n.Success = false
		} else {
			n.Result = strconv.Itoa(len(ids))
		}

	default:
		h.log.Warn("bulk action has no handler", "table", cfg.ID, "action", actionID)
		n.Success = false
	}

	http.Redirect(w, r, redirectURL(cfg.ID, r.URL.Query(), n), http.StatusSeeOther)
}
