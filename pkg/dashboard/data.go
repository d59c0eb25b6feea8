package dashboard

import (
	"time"

	"github.com/prive-edr/dashmock/pkg/theme"
)

// Source supplies the data shown on each dashboard. Implementations decide
// whether values are fixed, randomized or fetched; composition only reads
// them.
type Source interface {
	SOC() SOCData
	Hunting() HuntingData
	DLP() DLPData
	Executive() ExecutiveData
}

// Count is a labeled quantity. Labels may contain "\n" for two-line axis
// ticks.
type Count struct {
	Label string
	Value float64
}

// Change is a relative change in percent, or in points where the card says
// so. Positive values are improvements.
type Change float64

// SOCData drives the security operations center dashboard.
type SOCData struct {
	ActiveThreats   int
	ThreatsChange   Change // percent vs yesterday
	EventsPerSecond float64
	EventsChange    Change // percent vs average
	AgentsOnline    int
	Uptime          float64 // percent

	Hours  []float64                // hour of day
	ByTier map[theme.Name][]float64 // threat counts per hour and tier

	Tactics  []Count // MITRE ATT&CK detections today
	Severity []Count // alert distribution, one entry per tier
	Hosts    []Count // top affected endpoints, highest first
	Alerts   []Alert
}

// Alert is one entry of the recent critical alerts list.
type Alert struct {
	Time  string
	Title string
	Host  string
}

// HuntingData drives the threat hunting workbench.
type HuntingData struct {
	QueryTime    time.Duration
	Results      int
	Window       time.Duration
	BytesScanned float64

	Times   []float64 // hour of day; Process and Network are events per minute
	Process []float64
	Network []float64

	Tree []Process
	IOCs []IOC
}

// Process is one node of the execution tree. Parent is empty for the root.
// X and Y are positions on a 10×10 logical canvas with Y growing upward.
type Process struct {
	Name   string
	Parent string
	X, Y   float64
	Tier   theme.Name
}

// IOC is a threat intelligence match.
type IOC struct {
	Type   string
	Value  string
	Threat string
	Tier   theme.Name
}

// DLPData drives the data loss prevention dashboard.
type DLPData struct {
	Violations       int
	ViolationsChange Change // percent vs last week
	Policies         int
	FilesScanned     int
	Blocked          int

	Days     []float64 // daily counts, oldest first
	Detected []float64
	Stopped  []float64

	DataTypes []Count // files fingerprinted per data type
	Channels  []Count // violations per exfiltration channel
	Rules     []Policy
}

// Policy is one active DLP rule.
type Policy struct {
	Name     string
	Files    int
	Severity theme.Name
}

// ExecutiveData drives the executive summary.
type ExecutiveData struct {
	RiskScore   int
	RiskChange  Change // points
	Compliance  float64
	Frameworks  []string
	CostSavings float64 // dollars per year

	SecurityScore float64
	ScoreChange   Change // points this month

	Months    []string // open risks per month and tier
	OpenRisks map[theme.Name][]float64

	FrameworkStatus []Count // percent compliant
	Threats         []Count // incidents per category, 30 days
	ROI             []Count // savings in $K
	Findings        []Finding
}

// Finding is one line of the risk summary. OK findings get a check mark,
// the rest a warning sign.
type Finding struct {
	OK     bool
	Title  string
	Detail string
}
