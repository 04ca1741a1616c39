package worker

import (
	"github.com/spec-kit/boutique-service/internal/service"
)

// StartAuditWorker registers audit trail handlers.
func StartAuditWorker(auditService *service.AuditService) {
	if auditService == nil {
		return
	}
	auditService.RegisterHandlers()
}
