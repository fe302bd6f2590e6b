package netlist

import log "github.com/sirupsen/logrus"

// Severity distinguishes a fatal Diagnostic from a merely informational
// one.
type Severity int

// Severities, lowest to highest.
const (
	SeverityWarning Severity = iota
	SeverityError
)

// String implements fmt.Stringer.
func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}

	return "warning"
}

// Diagnostic is a single structured finding, replacing the per-entity
// error()/warn() inheritance chain of the original implementation (§9):
// every entity holds its own Subject identity and forwards through a
// Reporter rather than subclassing error-reporting behavior.
type Diagnostic struct {
	Severity Severity
	// Category names the §7 error taxonomy bucket this diagnostic
	// belongs to (e.g. "blueprint", "hierarchy", "name-clash", "sab").
	Category string
	Subject  string
	Message  string
}

// Reporter accepts diagnostics from any pipeline entity.
type Reporter interface {
	Report(d Diagnostic)
}

// diagnosticSink is the Reporter implementation backing a Netlist: it
// accumulates every Diagnostic, sets Failed on the first error, and mirrors
// each one to logrus at the matching level, gated on Config.Verbose for
// warnings (errors always surface).
type diagnosticSink struct {
	netlist *Netlist
}

// Report implements Reporter.
func (r *diagnosticSink) Report(d Diagnostic) {
	r.netlist.Diagnostics = append(r.netlist.Diagnostics, d)

	if d.Severity == SeverityError {
		r.netlist.Failed = true
		log.WithFields(log.Fields{"category": d.Category, "subject": d.Subject}).
			Error(d.Message)

		return
	}

	if r.netlist.Config.Verbose {
		log.WithFields(log.Fields{"category": d.Category, "subject": d.Subject}).
			Warn(d.Message)
	}
}

// prefixedReporter wraps a Reporter to tag every Subject with a fixed
// prefix, used by the repackage helper so its diagnostics read distinctly
// from the main extraction run's — grounded on util_repackage.py's
// subclassed Package/PackagePin error()/warn() overrides, which prefix
// messages with "(re-packaged)".
type prefixedReporter struct {
	inner  Reporter
	prefix string
}

// Report implements Reporter.
func (r *prefixedReporter) Report(d Diagnostic) {
	d.Subject = r.prefix + d.Subject
	r.inner.Report(d)
}

func warn(r Reporter, category, subject, msg string) {
	r.Report(Diagnostic{SeverityWarning, category, subject, msg})
}

func fail(r Reporter, category, subject, msg string) {
	r.Report(Diagnostic{SeverityError, category, subject, msg})
}
