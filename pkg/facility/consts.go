package facility

// Canonical facility set - numerical codes per RFC 5424 section 6.2.1,
// labels per RFC 5427, ordered by code with no gaps
var facilities = [24]Facility{
	{0, "KERN"},      // Kernel messages
	{1, "USER"},      // User-level messages
	{2, "MAIL"},      // Mail system
	{3, "DAEMON"},    // System daemons
	{4, "AUTH"},      // Security/authorization messages
	{5, "SYSLOG"},    // Messages generated internally by syslogd
	{6, "LPR"},       // Line printer subsystem
	{7, "NEWS"},      // Network news subsystem
	{8, "UUCP"},      // UUCP subsystem
	{9, "CRON"},      // Clock daemon
	{10, "AUTHPRIV"}, // Security/authorization messages
	{11, "FTP"},      // FTP daemon
	{12, "NTP"},      // NTP subsystem
	{13, "AUDIT"},    // Log audit
	{14, "ALERT"},    // Log alert
	{15, "CLOCK"},    // Clock daemon
	{16, "LOCAL0"},   // Reserved for local use
	{17, "LOCAL1"},   // Reserved for local use
	{18, "LOCAL2"},   // Reserved for local use
	{19, "LOCAL3"},   // Reserved for local use
	{20, "LOCAL4"},   // Reserved for local use
	{21, "LOCAL5"},   // Reserved for local use
	{22, "LOCAL6"},   // Reserved for local use
	{23, "LOCAL7"},   // Reserved for local use
}

// Lookup indices - package variable initialization runs after the table
// above exists, and nothing mutates these afterward
var (
	facilityFromCode  = buildCodeIndex()
	facilityFromLabel = buildLabelIndex()
)

func buildCodeIndex() map[int]Facility {
	index := make(map[int]Facility, len(facilities))
	for _, f := range facilities {
		index[f.code] = f
	}
	return index
}

func buildLabelIndex() map[string]Facility {
	index := make(map[string]Facility, len(facilities))
	for _, f := range facilities {
		index[f.label] = f
	}
	return index
}
