package worker

import (
	"github.com/spec-kit/school-admin-service/internal/service"
)

// StartNotificationWorker subscribes the notification stubs to the account,
// student, fee and loan events emitted by the services.
func StartNotificationWorker(notificationService *service.NotificationService) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
}
