// Package sample generates the synthetic data shown on the dashboards.
//
// Headline numbers and lists are fixed marketing copy. Time series are
// drawn from seeded random sources, so a given seed always yields the same
// images. Each dashboard draws from its own stream: generating one dashboard
// never shifts the data of another.
package sample

import (
	"hash/fnv"
	"math"
	"math/rand/v2"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/prive-edr/dashmock/pkg/dashboard"
	"github.com/prive-edr/dashmock/pkg/theme"
)

// Generator implements [dashboard.Source].
type Generator struct {
	seed uint64
}

var _ dashboard.Source = (*Generator)(nil)

// New returns a generator for seed. A zero seed is replaced by one derived
// from the current time.
func New(seed uint64) *Generator {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Generator{seed: seed}
}

// Seed returns the effective seed.
func (g *Generator) Seed() uint64 { return g.seed }

// stream returns a random source private to one dashboard.
func (g *Generator) stream(kind dashboard.Kind) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(kind))
	return rand.New(rand.NewPCG(g.seed, h.Sum64()))
}

// poisson draws from a Poisson distribution with mean lambda (Knuth).
func poisson(r *rand.Rand, lambda float64) float64 {
	limit := math.Exp(-lambda)
	k, p := 0, 1.0
	for {
		p *= r.Float64()
		if p <= limit {
			return float64(k)
		}
		k++
	}
}

// normal draws from N(mean, sd).
func normal(r *rand.Rand, mean, sd float64) float64 {
	return mean + sd*r.NormFloat64()
}

// arange returns 0, 1, ..., n-1.
func arange(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

// linspace returns n evenly spaced values from lo to hi inclusive.
func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	return out
}

// round1 rounds every value to one decimal, clamping negatives to zero.
func round1(values []float64) []float64 {
	for i, v := range values {
		r, err := stats.Round(math.Max(0, v), 1)
		if err == nil {
			values[i] = r
		}
	}
	return values
}

// SOC returns data for the security operations center dashboard.
func (g *Generator) SOC() dashboard.SOCData {
	r := g.stream(dashboard.SOC)
	hours := arange(24)
	means := map[theme.Name]float64{theme.Critical: 2, theme.High: 5, theme.Medium: 12, theme.Low: 20}
	byTier := make(map[theme.Name][]float64, len(means))
	// Draw in stacking order so the stream is consumed deterministically.
	for _, tier := range theme.StackOrder {
		v := make([]float64, len(hours))
		for i := range v {
			v[i] = poisson(r, means[tier])
		}
		byTier[tier] = v
	}

	return dashboard.SOCData{
		ActiveThreats:   23,
		ThreatsChange:   -15,
		EventsPerSecond: 12500,
		EventsChange:    3.2,
		AgentsOnline:    10247,
		Uptime:          99.8,
		Hours:           hours,
		ByTier:          byTier,
		Tactics: []dashboard.Count{
			{Label: "Initial\nAccess", Value: 8},
			{Label: "Execution", Value: 15},
			{Label: "Persistence", Value: 12},
			{Label: "Priv Esc", Value: 6},
			{Label: "Defense\nEvasion", Value: 22},
			{Label: "Credential\nAccess", Value: 4},
			{Label: "Discovery", Value: 18},
			{Label: "Lateral\nMovement", Value: 3},
			{Label: "Collection", Value: 7},
			{Label: "Exfiltration", Value: 2},
		},
		Severity: []dashboard.Count{
			{Label: "Critical", Value: 23},
			{Label: "High", Value: 45},
			{Label: "Medium", Value: 87},
			{Label: "Low", Value: 145},
		},
		Hosts: []dashboard.Count{
			{Label: "DESKTOP-A4F21", Value: 18},
			{Label: "LAPTOP-8B92E", Value: 14},
			{Label: "SERVER-DC01", Value: 12},
			{Label: "WORKSTATION-45", Value: 9},
			{Label: "DEVBOX-STAGING", Value: 7},
		},
		Alerts: []dashboard.Alert{
			{Time: "15:42", Title: "Ransomware Activity Detected", Host: "LAPTOP-8B92E"},
			{Time: "14:18", Title: "Lateral Movement Attempt", Host: "SERVER-DC01"},
			{Time: "12:33", Title: "Privilege Escalation", Host: "DESKTOP-A4F21"},
			{Time: "11:05", Title: "C2 Beacon Communication", Host: "WORKSTATION-45"},
		},
	}
}

// Hunting returns data for the threat hunting workbench.
func (g *Generator) Hunting() dashboard.HuntingData {
	r := g.stream(dashboard.Hunting)
	times := linspace(0, 24, 200)
	process := make([]float64, len(times))
	network := make([]float64, len(times))
	for i, t := range times {
		process[i] = math.Sin(t*0.5)*20 + 40 + normal(r, 0, 5)
	}
	for i, t := range times {
		network[i] = math.Cos(t*0.7)*15 + 35 + normal(r, 0, 3)
	}

	return dashboard.HuntingData{
		QueryTime:    47 * time.Millisecond,
		Results:      1247,
		Window:       24 * time.Hour,
		BytesScanned: 2.4e12,
		Times:        times,
		Process:      round1(process),
		Network:      round1(network),
		Tree: []dashboard.Process{
			{Name: "explorer.exe", X: 5, Y: 9, Tier: theme.Accent},
			{Name: "cmd.exe", Parent: "explorer.exe", X: 3, Y: 7, Tier: theme.Warning},
			{Name: "powershell.exe", Parent: "explorer.exe", X: 7, Y: 7, Tier: theme.Danger},
			{Name: "certutil.exe", Parent: "cmd.exe", X: 2, Y: 5, Tier: theme.Critical},
			{Name: "net.exe", Parent: "cmd.exe", X: 4, Y: 5, Tier: theme.Danger},
			{Name: "reg.exe", Parent: "powershell.exe", X: 6, Y: 5, Tier: theme.Danger},
			{Name: "rundll32.exe", Parent: "powershell.exe", X: 8, Y: 5, Tier: theme.Critical},
		},
		IOCs: []dashboard.IOC{
			{Type: "IP Address", Value: "192.168.1.100", Threat: "Cobalt Strike C2", Tier: theme.Critical},
			{Type: "File Hash", Value: "a4f3bc...", Threat: "Known Ransomware", Tier: theme.Critical},
			{Type: "Domain", Value: "evil.com", Threat: "Phishing Campaign", Tier: theme.Danger},
			{Type: "Process", Value: "mimikatz.exe", Threat: "Credential Theft", Tier: theme.Danger},
			{Type: "Registry Key", Value: `Run\Backdoor`, Threat: "Persistence", Tier: theme.Warning},
			{Type: "Network Port", Value: "TCP:4444", Threat: "Reverse Shell", Tier: theme.Critical},
		},
	}
}

// DLP returns data for the data loss prevention dashboard.
func (g *Generator) DLP() dashboard.DLPData {
	r := g.stream(dashboard.DLP)
	days := arange(30)
	detected := make([]float64, len(days))
	for i, d := range days {
		detected[i] = math.Max(0, 50-d+normal(r, 0, 5))
	}
	stopped := make([]float64, len(days))
	for i, v := range detected {
		stopped[i] = v*0.7 + normal(r, 0, 2)
	}

	return dashboard.DLPData{
		Violations:       47,
		ViolationsChange: -23,
		Policies:         18,
		FilesScanned:     2400000,
		Blocked:          12,
		Days:             days,
		Detected:         round1(detected),
		Stopped:          round1(stopped),
		DataTypes: []dashboard.Count{
			{Label: "Credit Cards", Value: 245000},
			{Label: "SSN/PII", Value: 180000},
			{Label: "Source Code", Value: 420000},
			{Label: "Financial", Value: 95000},
			{Label: "Health Records", Value: 380000},
			{Label: "API Keys", Value: 62000},
		},
		Channels: []dashboard.Count{
			{Label: "Email", Value: 18},
			{Label: "Cloud Upload", Value: 12},
			{Label: "USB Drive", Value: 8},
			{Label: "Print", Value: 5},
			{Label: "Network Share", Value: 4},
		},
		Rules: []dashboard.Policy{
			{Name: "PCI DSS - Credit Card Protection", Files: 245000, Severity: theme.High},
			{Name: "HIPAA - PHI Compliance", Files: 380000, Severity: theme.High},
			{Name: "Source Code Protection", Files: 420000, Severity: theme.Medium},
			{Name: "Customer PII - GDPR", Files: 180000, Severity: theme.High},
			{Name: "API Keys & Credentials", Files: 62000, Severity: theme.Critical},
			{Name: "Financial Reports", Files: 95000, Severity: theme.Medium},
		},
	}
}

// Executive returns data for the executive summary.
func (g *Generator) Executive() dashboard.ExecutiveData {
	r := g.stream(dashboard.Executive)
	// Month-to-month wobble on top of the downward trend.
	jitter := func(base []float64) []float64 {
		out := make([]float64, len(base))
		for i, v := range base {
			out[i] = math.Round(math.Max(0, v+normal(r, 0, v*0.02)))
		}
		return out
	}

	return dashboard.ExecutiveData{
		RiskScore:     72,
		RiskChange:    5,
		Compliance:    98.7,
		Frameworks:    []string{"SOC2", "HIPAA", "GDPR"},
		CostSavings:   840000,
		SecurityScore: 87,
		ScoreChange:   5,
		Months:        []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"},
		OpenRisks: map[theme.Name][]float64{
			theme.Critical: jitter([]float64{45, 38, 32, 28, 25, 23}),
			theme.High:     jitter([]float64{120, 105, 95, 88, 82, 78}),
			theme.Medium:   jitter([]float64{280, 265, 250, 245, 240, 235}),
		},
		FrameworkStatus: []dashboard.Count{
			{Label: "SOC 2\nType II", Value: 100},
			{Label: "HIPAA", Value: 99},
			{Label: "GDPR", Value: 98},
			{Label: "PCI DSS", Value: 97},
			{Label: "ISO\n27001", Value: 96},
		},
		Threats: []dashboard.Count{
			{Label: "Malware", Value: 34},
			{Label: "Phishing", Value: 28},
			{Label: "DLP Violations", Value: 47},
			{Label: "Insider Threat", Value: 12},
			{Label: "Vuln Exploit", Value: 8},
			{Label: "Misc", Value: 6},
		},
		ROI: []dashboard.Count{
			{Label: "Tool\nConsolidation", Value: 800},
			{Label: "Reduced\nHeadcount", Value: 200},
			{Label: "Prevented\nBreaches", Value: 105},
			{Label: "Compliance\nEfficiency", Value: 90},
		},
		Findings: []dashboard.Finding{
			{OK: true, Title: "SOC Team Fully Operational", Detail: "All 6 analysts trained on Privé platform"},
			{OK: false, Title: "Phishing Incidents +12% This Month", Detail: "Recommend additional user training"},
			{OK: true, Title: "Zero Critical Vulnerabilities", Detail: "All endpoints patched within 48hrs"},
			{OK: false, Title: "DLP Policy Coverage at 87%", Detail: "13% of endpoints need policy updates"},
			{OK: true, Title: "$840K Annual Cost Savings Achieved", Detail: "ROI realized in 4.2 months"},
		},
	}
}
