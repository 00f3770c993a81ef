package playground

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/Vasu1712/spring-playground/internal/models"
)

// NotificationMarker marks one notification as read.
type NotificationMarker interface {
	MarkNotificationRead(ctx context.Context, userID, notificationID string) error
}

// MarkReadResult is the outcome of a bulk mark-as-read.
type MarkReadResult struct {
	Total      int
	Succeeded  int
	Failed     int
	FailedIDs  []string // In input order
	FirstError string   // Error of the earliest failed id in input order
	// Notifications is the input list with every succeeded id marked read.
	// Failed ids keep their previous state so the operation can be retried.
	Notifications []models.Notification
}

// MarkAllRead marks every unread notification in ns, one call per id, all in
// flight at once. A failing call never cancels or delays the others; the result
// is reported only after every call has finished.
func MarkAllRead(ctx context.Context, m NotificationMarker, userID string, ns []models.Notification) MarkReadResult {
	var unread []string
	for _, n := range ns {
		if !n.Read {
			unread = append(unread, n.ID)
		}
	}

	errs := make([]error, len(unread))
	var wg sync.WaitGroup
	for i, id := range unread {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			errs[i] = m.MarkNotificationRead(ctx, userID, id)
		}(i, id)
	}
	wg.Wait()

	res := MarkReadResult{Total: len(unread)}
	succeeded := make(map[string]bool, len(unread))
	for i, id := range unread {
		if err := errs[i]; err != nil {
			res.Failed++
			res.FailedIDs = append(res.FailedIDs, id)
			if res.FirstError == "" {
				res.FirstError = err.Error()
			}
			log.Printf("[Playground] Failed to mark notification %s as read: %v", id, err)
			continue
		}
		res.Succeeded++
		succeeded[id] = true
	}

	res.Notifications = make([]models.Notification, len(ns))
	for i, n := range ns {
		if succeeded[n.ID] {
			n.Read = true
		}
		res.Notifications[i] = n
	}
	return res
}

// Summary is the notice shown to the user after a bulk mark-as-read.
func (r MarkReadResult) Summary() string {
	switch {
	case r.Failed > 0:
		msg := fmt.Sprintf("Falha ao marcar %d de %d notificações.", r.Failed, r.Total)
		if r.FirstError != "" {
			msg += fmt.Sprintf(" (Erro: %s)", r.FirstError)
		}
		return msg
	case r.Succeeded == 1:
		return "1 notificação marcada como lida."
	case r.Succeeded > 1:
		return fmt.Sprintf("%d notificações marcadas como lidas.", r.Succeeded)
	default:
		return ""
	}
}
