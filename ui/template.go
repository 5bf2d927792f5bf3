package ui

import "strings"

// Schemes with their own diagram layout. Any other scheme uses the HTTP one.
const (
	SchemeHTTP  = "http"
	SchemeHTTPS = "https"
)

// httpLayout and httpsLayout are the diagram texts; {xxxxx} marks a slot.
const httpLayout = "  DNS Lookup   TCP Connection   Server Processing   Content Transfer\n" +
	"[   {a0000}  |     {a0001}    |      {a0003}      |      {a0004}     ]\n" +
	"             |                |                   |                  |\n" +
	"    namelookup:{b0000}        |                   |                  |\n" +
	"                        connect:{b0001}           |                  |\n" +
	"                                      starttransfer:{b0003}          |\n" +
	"                                                                 total:{b0004}"

const httpsLayout = "  DNS Lookup   TCP Connection   SSL Handshake   Server Processing   Content Transfer\n" +
	"[   {a0000}  |     {a0001}    |    {a0002}    |      {a0003}      |      {a0004}     ]\n" +
	"             |                |               |                   |                  |\n" +
	"    namelookup:{b0000}        |               |                   |                  |\n" +
	"                        connect:{b0001}       |                   |                  |\n" +
	"                                    pretransfer:{b0002}           |                  |\n" +
	"                                                      starttransfer:{b0003}          |\n" +
	"                                                                                 total:{b0004}"

var (
	httpSlots  = []Phase{DNSLookup, TCPConnection, ServerProcessing, ContentTransfer, NameLookup, Connect, StartTransfer, Total}
	httpsSlots = Phases
)

// Template accumulates rendered slots and lays them out in the diagram for
// its scheme. Insertions overwrite earlier text for the same slot; Format is
// read-only and can be called any number of times.
type Template struct {
	slots  map[string]string
	scheme string
}

// NewTemplate returns an empty template for scheme.
func NewTemplate(scheme string) *Template {
	return &Template{
		slots:  make(map[string]string),
		scheme: scheme,
	}
}

// Scheme returns the scheme the template was created for.
func (t *Template) Scheme() string {
	return t.scheme
}

// Insert stores the text for a slot.
func (t *Template) Insert(s Slot) {
	t.slots[s.ID] = s.Text
}

// Add renders p and inserts the result.
func (t *Template) Add(p Progress) {
	t.Insert(p.Render())
}

// Format returns the diagram. Slots never inserted render as empty strings;
// the surrounding text and line breaks are unchanged.
func (t *Template) Format() string {
	layout, phases := httpLayout, httpSlots
	if t.scheme == SchemeHTTPS {
		layout, phases = httpsLayout, httpsSlots
	}

	pairs := make([]string, 0, 2*len(phases))
	for _, p := range phases {
		id := p.SlotID()
		pairs = append(pairs, "{"+id+"}", t.slots[id])
	}
	return strings.NewReplacer(pairs...).Replace(layout)
}
