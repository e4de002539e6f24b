package header

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/zostay/go-addr/pkg/addr"

	"github.com/zostay/go-contenttree/message/header/param"
)

// Errors returned by Header methods.
var (
	// ErrNoSuchField is returned when the named field is not set.
	ErrNoSuchField = errors.New("no such header field")

	// ErrNoSuchFieldParameter is returned when the field is set, but the
	// requested parameter of a parameterized field is not.
	ErrNoSuchFieldParameter = errors.New("no such header field parameter")

	// ErrManyFields is returned alongside the first value when a field that
	// should appear once is set more than once.
	ErrManyFields = errors.New("many header fields found")
)

// Standard field names.
const (
	Bcc                     = "Bcc"
	Cc                      = "Cc"
	ContentDisposition      = "Content-disposition"
	ContentTransferEncoding = "Content-transfer-encoding"
	ContentType             = "Content-type"
	Date                    = "Date"
	From                    = "From"
	MessageID               = "Message-id"
	ReplyTo                 = "Reply-to"
	Sender                  = "Sender"
	Subject                 = "Subject"
	To                      = "To"
)

// UnixDateWithEarlyYear is a date layout seen in the wild that the usual
// parsers reject.
const UnixDateWithEarlyYear = "Mon Jan 02 15:04:05 2006 MST"

// Header wraps Base with typed accessors. Parsed values of the structured
// fields are cached; the cache only ever holds immutable values.
//
// Getters return ErrNoSuchField when the field is missing.
type Header struct {
	Base

	valueCache map[string]any
}

// Clone returns a deep copy of the header.
func (h *Header) Clone() *Header {
	vc := make(map[string]any, len(h.valueCache))
	for k, v := range h.valueCache {
		vc[k] = v
	}

	return &Header{
		Base:       *h.Base.Clone(),
		valueCache: vc,
	}
}

func (h *Header) getValue(name string) (any, bool) {
	v, found := h.valueCache[strings.ToLower(name)]
	return v, found
}

func (h *Header) setValue(name string, value any) {
	if h.valueCache == nil {
		h.valueCache = make(map[string]any, h.Len())
	}
	h.valueCache[strings.ToLower(name)] = value
}

func (h *Header) clearValue(name string) {
	delete(h.valueCache, strings.ToLower(name))
}

// Get returns the body of the named field. If the field is set more than
// once, the first body is returned with ErrManyFields.
func (h *Header) Get(name string) (string, error) {
	ixs := h.GetIndexesNamed(name)
	if len(ixs) == 0 {
		return "", ErrNoSuchField
	}

	b := h.GetField(ixs[0]).Body()
	if len(ixs) > 1 {
		return b, ErrManyFields
	}

	return b, nil
}

// GetAll returns the bodies of every field with the given name.
func (h *Header) GetAll(name string) ([]string, error) {
	fs := h.GetAllFieldsNamed(name)
	if len(fs) == 0 {
		return nil, ErrNoSuchField
	}

	bs := make([]string, len(fs))
	for i, f := range fs {
		bs[i] = f.Body()
	}

	return bs, nil
}

// Set replaces the named field, keeping the position of the first instance
// and removing any others. The field is appended if it is not yet set.
func (h *Header) Set(name, body string) {
	h.clearValue(name)

	ixs := h.GetIndexesNamed(name)
	if len(ixs) == 0 {
		h.InsertBeforeField(h.Len(), name, body)
		return
	}

	for i := len(ixs) - 1; i > 0; i-- {
		_ = h.DeleteField(ixs[i])
	}

	h.GetField(ixs[0]).SetBody(body)
}

// ParseTime parses a date field body. RFC 5322 format is tried first, then
// any format dateparse recognizes, then a few odd layouts seen in real mail.
func ParseTime(body string) (time.Time, error) {
	if t, err := mail.ParseDate(body); err == nil {
		return t, nil
	}

	if t, err := dateparse.ParseAny(body); err == nil {
		return t, nil
	}

	if t, err := time.Parse(UnixDateWithEarlyYear, body); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("time string %q cannot be parsed", body)
}

// GetTime returns the named field parsed with ParseTime.
func (h *Header) GetTime(name string) (time.Time, error) {
	if v, found := h.getValue(name); found {
		if t, isTime := v.(time.Time); isTime {
			return t, nil
		}
	}

	body, err := h.Get(name)
	if err != nil && !errors.Is(err, ErrManyFields) {
		return time.Time{}, err
	}

	t, err := ParseTime(body)
	if err != nil {
		return t, err
	}

	h.setValue(name, t)
	return t, nil
}

// SetTime sets the named field to t in RFC 5322 format.
func (h *Header) SetTime(name string, t time.Time) {
	h.Set(name, t.Format(time.RFC1123Z))
	h.setValue(name, t)
}

// ParseAddressList parses an address field body. A strict parse is tried
// first. When that fails, a very forgiving parse is used that will return
// something for any input, even if that something is a little weird.
func ParseAddressList(body string) addr.AddressList {
	al, err := addr.ParseEmailAddressList(body)
	if err != nil {
		al = parseEmailAddressList(body)
	}
	return al
}

// GetAddressList returns the named field parsed with ParseAddressList.
func (h *Header) GetAddressList(name string) (addr.AddressList, error) {
	if v, found := h.getValue(name); found {
		if al, isAddrList := v.(addr.AddressList); isAddrList {
			return al, nil
		}
	}

	body, err := h.Get(name)
	if err != nil && !errors.Is(err, ErrManyFields) {
		return nil, err
	}

	al := ParseAddressList(body)
	h.setValue(name, al)
	return al, nil
}

// GetParamValue returns the named field parsed as a param.Value. The value
// returned is a copy and may be modified freely.
func (h *Header) GetParamValue(name string) (*param.Value, error) {
	if v, found := h.getValue(name); found {
		if pv, isPV := v.(*param.Value); isPV {
			return pv.Clone(), nil
		}
	}

	body, err := h.Get(name)
	if err != nil && !errors.Is(err, ErrManyFields) {
		return nil, err
	}

	pv, err := param.Parse(body)
	if err != nil {
		return nil, err
	}

	h.setValue(name, pv)
	return pv.Clone(), nil
}

// SetParamValue sets the named field from a param.Value.
func (h *Header) SetParamValue(name string, pv *param.Value) {
	h.Set(name, pv.String())
	h.setValue(name, pv.Clone())
}

func (h *Header) getParamValueParam(name, p string) (string, error) {
	pv, err := h.GetParamValue(name)
	if err != nil {
		return "", err
	}

	v, ok := pv.Parameters()[p]
	if !ok {
		return "", ErrNoSuchFieldParameter
	}

	return v, nil
}

// setParamValueValue changes the primary value of the named field, keeping
// its parameters, or creates the field.
func (h *Header) setParamValueValue(name, v string) {
	pv, err := h.GetParamValue(name)
	if err != nil {
		h.SetParamValue(name, param.New(v))
		return
	}
	h.SetParamValue(name, param.Modify(pv, param.Change(v)))
}

func (h *Header) setParamValueParam(name, p, v string) error {
	pv, err := h.GetParamValue(name)
	if err != nil {
		return err
	}
	h.SetParamValue(name, param.Modify(pv, param.Set(p, v)))
	return nil
}

// GetContentType returns the Content-type field as a param.Value.
func (h *Header) GetContentType() (*param.Value, error) {
	return h.GetParamValue(ContentType)
}

// GetMediaType returns the MIME type from the Content-type field, lowercased
// and without parameters.
func (h *Header) GetMediaType() (string, error) {
	pv, err := h.GetContentType()
	if err != nil {
		return "", err
	}
	return pv.MediaType(), nil
}

// SetMediaType sets the MIME type of the Content-type field, keeping any
// parameters already set.
func (h *Header) SetMediaType(mt string) {
	h.setParamValueValue(ContentType, mt)
}

// GetCharset returns the charset parameter of Content-type. It returns
// ErrNoSuchFieldParameter if Content-type is set without one.
func (h *Header) GetCharset() (string, error) {
	return h.getParamValueParam(ContentType, param.Charset)
}

// SetCharset sets the charset parameter of Content-type, which must already
// be set.
func (h *Header) SetCharset(c string) error {
	return h.setParamValueParam(ContentType, param.Charset, c)
}

// GetBoundary returns the boundary parameter of Content-type.
func (h *Header) GetBoundary() (string, error) {
	return h.getParamValueParam(ContentType, param.Boundary)
}

// SetBoundary sets the boundary parameter of Content-type, which must already
// be set.
func (h *Header) SetBoundary(b string) error {
	return h.setParamValueParam(ContentType, param.Boundary, b)
}

// GetPresentation returns "inline" or "attachment" (or whatever else is found
// there) from Content-disposition.
func (h *Header) GetPresentation() (string, error) {
	pv, err := h.GetParamValue(ContentDisposition)
	if err != nil {
		return "", err
	}
	return pv.Presentation(), nil
}

// SetPresentation sets the primary value of Content-disposition.
func (h *Header) SetPresentation(d string) {
	h.setParamValueValue(ContentDisposition, d)
}

// GetFilename returns the filename parameter of Content-disposition.
func (h *Header) GetFilename() (string, error) {
	return h.getParamValueParam(ContentDisposition, param.Filename)
}

// SetFilename sets the filename parameter of Content-disposition, which must
// already be set.
func (h *Header) SetFilename(f string) error {
	return h.setParamValueParam(ContentDisposition, param.Filename, f)
}

// GetDate returns the Date field as a time.Time.
func (h *Header) GetDate() (time.Time, error) {
	return h.GetTime(Date)
}

// SetDate sets the Date field.
func (h *Header) SetDate(d time.Time) {
	h.SetTime(Date, d)
}

// GetSubject returns the Subject field.
func (h *Header) GetSubject() (string, error) {
	return h.Get(Subject)
}

// SetSubject sets the Subject field.
func (h *Header) SetSubject(s string) {
	h.Set(Subject, s)
}

// GetFrom returns the From field as an address list.
func (h *Header) GetFrom() (addr.AddressList, error) {
	return h.GetAddressList(From)
}

// GetTo returns the To field as an address list.
func (h *Header) GetTo() (addr.AddressList, error) {
	return h.GetAddressList(To)
}

// GetMessageID returns the Message-id field.
func (h *Header) GetMessageID() (string, error) {
	return h.Get(MessageID)
}

// GetTransferEncoding returns the Content-transfer-encoding field, trimmed
// and lowercased.
func (h *Header) GetTransferEncoding() (string, error) {
	cte, err := h.Get(ContentTransferEncoding)
	return strings.ToLower(strings.TrimSpace(cte)), err
}

// SetTransferEncoding sets the Content-transfer-encoding field.
func (h *Header) SetTransferEncoding(cte string) {
	h.Set(ContentTransferEncoding, cte)
}

// parseEmailAddressList is the fallback used when go-addr's strict parser
// gives up. Each comma-separated entry has its comments pulled out, then the
// last word is taken as the address and everything before it as the display
// name. Groups are not recognized.
func parseEmailAddressList(v string) addr.AddressList {
	extractComments := func(s string) (string, string) {
		var clean, comment strings.Builder
		depth := 0
		for _, c := range s {
			switch {
			case c == '(':
				depth++
				if depth > 1 {
					comment.WriteRune(c)
				}
			case c == ')' && depth > 0:
				depth--
				if depth > 0 {
					comment.WriteRune(c)
				}
			case depth > 0:
				comment.WriteRune(c)
			default:
				clean.WriteRune(c)
			}
		}
		return clean.String(), comment.String()
	}

	entries := strings.Split(v, ",")
	as := make(addr.AddressList, 0, len(entries))
	for _, orig := range entries {
		mb, com := extractComments(orig)
		parts := strings.Fields(mb)
		if len(parts) == 0 {
			continue
		}

		email := strings.Trim(parts[len(parts)-1], "<>")
		dn := strings.Join(parts[:len(parts)-1], " ")

		local, domain := email, ""
		if i := strings.LastIndex(email, "@"); i > -1 {
			local, domain = email[:i], email[i+1:]
		}
		addrSpec := addr.NewAddrSpecParsed(local, domain, email)

		mailbox, err := addr.NewMailboxParsed(dn, addrSpec, strings.TrimSpace(com), orig)
		if err != nil {
			mailbox, _ = addr.NewMailboxParsed(dn, addrSpec, "", orig)
		}

		as = append(as, mailbox)
	}

	return as
}
