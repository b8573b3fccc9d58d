package mail

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"
	"time"

	"github.com/google/uuid"
)

// base64LineLength is the maximum line length for encoded attachment
// content, per RFC 2045.
const base64LineLength = 76

// buildEmailBody renders a Message into a complete RFC 5322 byte
// stream, using multipart/mixed when attachments are present.
func buildEmailBody(msg *Message) ([]byte, error) {
	var buf bytes.Buffer

	// Sanitize headers
	sanitize := func(s string) string {
		return strings.ReplaceAll(strings.ReplaceAll(s, "\r", ""), "\n", "")
	}

	writeHeader := func(key, value string) {
		fmt.Fprintf(&buf, "%s: %s\r\n", key, sanitize(value))
	}

	writeHeader("From", msg.From)
	writeHeader("To", strings.Join(msg.To, ", "))
	if len(msg.Cc) > 0 {
		writeHeader("Cc", strings.Join(msg.Cc, ", "))
	}
	writeHeader("Subject", msg.Subject)
	writeHeader("Date", time.Now().Format(time.RFC1123Z))
	writeHeader("Message-ID", fmt.Sprintf("<%s@mailtap>", uuid.New().String()))
	writeHeader("MIME-Version", "1.0")

	contentType := "text/plain"
	if msg.ContentType != "" {
		contentType = msg.ContentType
	}

	if len(msg.Attachments) == 0 {
		writeHeader("Content-Type", fmt.Sprintf("%s; charset=UTF-8", contentType))
		buf.WriteString("\r\n")
		buf.WriteString(msg.Body)
		return buf.Bytes(), nil
	}

	mw := multipart.NewWriter(&buf)
	writeHeader("Content-Type", fmt.Sprintf("multipart/mixed; boundary=%s", mw.Boundary()))
	buf.WriteString("\r\n")

	textHeader := textproto.MIMEHeader{}
	textHeader.Set("Content-Type", fmt.Sprintf("%s; charset=UTF-8", contentType))
	part, err := mw.CreatePart(textHeader)
	if err != nil {
		return nil, fmt.Errorf("failed to create text part: %w", err)
	}
	if _, err := part.Write([]byte(msg.Body)); err != nil {
		return nil, fmt.Errorf("failed to write text part: %w", err)
	}

	for _, att := range msg.Attachments {
		if err := writeAttachment(mw, att); err != nil {
			return nil, err
		}
	}

	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	return buf.Bytes(), nil
}

func writeAttachment(mw *multipart.Writer, att Attachment) error {
	contentType := att.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	header := textproto.MIMEHeader{}
	header.Set("Content-Type", contentType)
	header.Set("Content-Transfer-Encoding", "base64")
	header.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", att.Filename))

	part, err := mw.CreatePart(header)
	if err != nil {
		return fmt.Errorf("failed to create attachment part for %s: %w", att.Filename, err)
	}

	encoded := base64.StdEncoding.EncodeToString(att.Content)
	for len(encoded) > 0 {
		n := base64LineLength
		if n > len(encoded) {
			n = len(encoded)
		}
		if _, err := fmt.Fprintf(part, "%s\r\n", encoded[:n]); err != nil {
			return fmt.Errorf("failed to write attachment content for %s: %w", att.Filename, err)
		}
		encoded = encoded[n:]
	}

	return nil
}
