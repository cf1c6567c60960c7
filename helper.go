package pnshelper

import (
	"github.com/rs/zerolog"

	"github.com/theoremus-urban-solutions/pns-helper/config"
	"github.com/theoremus-urban-solutions/pns-helper/formatter"
	"github.com/theoremus-urban-solutions/pns-helper/notification"
	"github.com/theoremus-urban-solutions/pns-helper/payload"
	"github.com/theoremus-urban-solutions/pns-helper/utils"
)

// DefaultDocumentRoot names the root element of generic documents
const DefaultDocumentRoot = "document"

// Helper turns pipeline events into push notification payloads
type Helper struct {
	Builder *notification.Builder
	Logger  zerolog.Logger
	Root    string
}

// New creates a helper over a notification-code table
func New(codes notification.CodeTable, logger zerolog.Logger) *Helper {
	return &Helper{
		Builder: notification.NewBuilder(codes, logger),
		Logger:  logger,
		Root:    DefaultDocumentRoot,
	}
}

// NewFromConfig creates a helper and its logger from application config
func NewFromConfig(cfg config.AppConfig) *Helper {
	h := New(cfg.Notification.Codes, NewLogger(cfg.Log))
	if cfg.Notification.DocumentRoot != "" {
		h.Root = cfg.Notification.DocumentRoot
	}
	return h
}

// CreateIosNotification builds the Apple push payload for an event
func (h *Helper) CreateIosNotification(ev payload.Event) notification.IosNotification {
	return h.Builder.CreateIosNotification(ev)
}

// CreateIosNotificationJSON builds the Apple push payload and renders it as JSON
func (h *Helper) CreateIosNotificationJSON(ev payload.Event) ([]byte, error) {
	rb := formatter.NewResponseBuilder()
	return rb.BuildJSON(h.CreateIosNotification(ev))
}

// CreateXmlNotification renders the <notification> document for an event
func (h *Helper) CreateXmlNotification(ev payload.Event) (string, error) {
	return h.Builder.CreateXmlNotification(ev)
}

// CreateDocument serializes any value under the configured root element
func (h *Helper) CreateDocument(v payload.Value) (string, error) {
	return CreateXmlDocument(v, h.Root)
}

// Flush logs the warnings collected since the last flush
func (h *Helper) Flush() {
	h.Builder.Warnings().LogAll(h.Logger)
}

// CreateXmlDocument serializes v under a root element named root
func CreateXmlDocument(v payload.Value, root string) (string, error) {
	return formatter.CreateXmlDocument(v, root)
}

// Union copies into a every field of b that a does not own. Anything other
// than two mappings leaves a unchanged.
func Union(a, b payload.Value) payload.Value {
	return payload.UnionValues(a, b)
}

// GenerateUUID returns a random version 4 UUID
func GenerateUUID() string {
	return utils.GenerateUUID()
}
