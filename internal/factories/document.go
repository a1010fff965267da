package factories

import (
	"time"

	"github.com/chrisdamba/foodadmin/internal/models"
)

func (f *Factory) Document(d models.Driver, docType string) models.Document {
	doc := models.Document{
		ID:             f.ID(),
		DriverID:       d.ID,
		DriverName:     d.Name,
		DriverEmail:    d.Email,
		DocumentType:   docType,
		DocumentNumber: f.fake.Numerify("DOC-########"),
		DocumentURL:    "https://files.example.com/documents/" + f.ID() + ".pdf",
		Status:         f.pick(models.DocumentStatuses),
		UploadedAt:     f.pastTime(90 * 24 * time.Hour),
	}
	if docType != models.DocumentTypeProofOfResidence {
		expiry := f.now.Add(time.Duration(f.fake.IntBetween(-30, 720)) * 24 * time.Hour)
		doc.ExpiryDate = &expiry
	}
	if doc.Status == models.DocumentStatusRejected {
		doc.RejectionReason = "Document is not legible"
	}
	return doc
}
