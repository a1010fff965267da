package sandbox

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chrisdamba/foodadmin/internal/models"
)

const expiryWindow = 30 * 24 * time.Hour

type rejectRequest struct {
	RejectionReason string `json:"rejectionReason"`
}

func (s *Server) listDocuments(c *gin.Context) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	ok(c, http.StatusOK, s.store.documents, "")
}

func (s *Server) documentStats(c *gin.Context) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	now := s.now()
	var stats models.DocumentStats
	for _, d := range s.store.documents {
		switch d.Status {
		case models.DocumentStatusPending:
			stats.PendingDocuments++
		case models.DocumentStatusApproved:
			stats.ApprovedDocuments++
		case models.DocumentStatusRejected:
			stats.RejectedDocuments++
		}
		if d.ExpiryDate != nil && d.ExpiryDate.After(now) && d.ExpiryDate.Before(now.Add(expiryWindow)) {
			stats.ExpiringSoon++
		}
	}
	ok(c, http.StatusOK, stats, "")
}

func (s *Server) approveDocument(c *gin.Context) {
	s.setDocumentStatus(c, models.DocumentStatusApproved, "", "Document approved successfully")
}

func (s *Server) rejectDocument(c *gin.Context) {
	var req rejectRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.RejectionReason) == "" {
		fail(c, http.StatusBadRequest, "Rejection reason is required")
		return
	}
	s.setDocumentStatus(c, models.DocumentStatusRejected, req.RejectionReason, "Document rejected successfully")
}

func (s *Server) setDocumentStatus(c *gin.Context, status, reason, message string) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	i := indexOf(s.store.documents, c.Param("id"), documentID)
	if i < 0 {
		fail(c, http.StatusNotFound, "Document not found")
		return
	}
	s.store.documents[i].Status = status
	s.store.documents[i].RejectionReason = reason
	ok(c, http.StatusOK, s.store.documents[i], message)
}

func (s *Server) listPayments(c *gin.Context) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	ok(c, http.StatusOK, s.store.payments, "")
}

func (s *Server) paymentStats(c *gin.Context) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	today := startOfDay(s.now())
	var stats models.PaymentStats
	for _, p := range s.store.payments {
		switch p.Status {
		case models.PaymentStatusCompleted:
			stats.TotalRevenue += p.Amount
			if !p.CreatedAt.Before(today) {
				stats.CompletedToday++
			}
		case models.PaymentStatusPending:
			stats.PendingAmount += p.Amount
		case models.PaymentStatusFailed:
			stats.FailedTransactions++
		}
	}
	ok(c, http.StatusOK, stats, "")
}

func (s *Server) refundPayment(c *gin.Context) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	i := indexOf(s.store.payments, c.Param("id"), paymentID)
	if i < 0 {
		fail(c, http.StatusNotFound, "Payment not found")
		return
	}
	if s.store.payments[i].Status != models.PaymentStatusCompleted {
		fail(c, http.StatusBadRequest, "Only completed payments can be refunded")
		return
	}
	s.store.payments[i].Status = models.PaymentStatusRefunded
	ok(c, http.StatusOK, s.store.payments[i], "Refund processed successfully")
}
