// Copyright SAP SE
// SPDX-License-Identifier: Apache-2.0

package notices

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

// Cookie that carries notices across a redirect.
const flashCookieName = "dashboard_flash"

// Store the notices in a short-lived cookie, to be shown after a redirect.
func SetFlash(w http.ResponseWriter, notices ...Notice) error {
	if len(notices) == 0 {
		return nil
	}
	raw, err := json.Marshal(notices)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    base64.RawURLEncoding.EncodeToString(raw),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Read the notices from the flash cookie and expire it.
// A malformed cookie is dropped silently.
func PopFlash(w http.ResponseWriter, r *http.Request) []Notice {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:   flashCookieName,
		Path:   "/",
		MaxAge: -1,
	})
	raw, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	var notices []Notice
	if err := json.Unmarshal(raw, &notices); err != nil {
		return nil
	}
	return notices
}

// Queue notices carried over from a previous request.
// They were already counted when they were raised.
func (q *Queue) Restore(notices []Notice) {
	for _, n := range notices {
		q.add(n)
	}
}
