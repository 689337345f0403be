package worker

import (
	"github.com/iqoooow/TERRA-ACADEMY/internal/service"
)

// StartNotificationWorker registers notification handlers on the event queue.
// The dispatcher's own goroutine delivers events, so moderation requests
// return before any notification work happens.
func StartNotificationWorker(notificationService *service.NotificationService) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
}
