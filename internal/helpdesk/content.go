package helpdesk

// Topic is a row of the help navigator panel.
type Topic struct {
	Name   string
	Status string
	Action string
}

// Tab returns the content tab the topic opens, if any.
func (t Topic) Tab() (Tab, bool) {
	switch t.Name {
	case "ABOUT FINCEPT":
		return TabAbout, true
	case "FEATURES":
		return TabFeatures, true
	case "SUPPORT":
		return TabSupport, true
	case "API DOCS":
		return TabAPIDocs, true
	}
	return "", false
}

const (
	StatusAvailable  = "AVAILABLE"
	StatusComingSoon = "COMING SOON"
	StatusActive     = "ACTIVE"
	StatusBeta       = "BETA"
)

// Feature is a row of the features table.
type Feature struct {
	Category    string
	Description string
	Status      string
	Access      string
}

// Endpoint is a row of the API documentation table.
type Endpoint struct {
	Path        string
	Method      string
	Description string
	RateLimit   string
	Auth        bool
}

// Fact is a label/value pair shown in the side panels.
type Fact struct {
	Label string
	Value string
}

var topics = []Topic{
	{Name: "ABOUT FINCEPT", Status: StatusAvailable, Action: "VIEW"},
	{Name: "FEATURES", Status: StatusAvailable, Action: "VIEW"},
	{Name: "MARKET DATA", Status: StatusAvailable, Action: "VIEW"},
	{Name: "PORTFOLIO", Status: StatusAvailable, Action: "VIEW"},
	{Name: "ANALYTICS", Status: StatusAvailable, Action: "VIEW"},
	{Name: "SUPPORT", Status: StatusAvailable, Action: "CONTACT"},
	{Name: "TUTORIALS", Status: StatusComingSoon, Action: "NOTIFY"},
	{Name: "API DOCS", Status: StatusAvailable, Action: "OPEN"},
	{Name: "COMMUNITY", Status: StatusAvailable, Action: "JOIN"},
	{Name: "FEEDBACK", Status: StatusAvailable, Action: "SEND"},
}

var features = []Feature{
	{Category: "Market Data", Description: "Real-time quotes, indices, forex, commodities", Status: StatusActive, Access: "ALL USERS"},
	{Category: "Portfolio Mgmt", Description: "Track holdings, P&L, asset allocation", Status: StatusActive, Access: "ALL USERS"},
	{Category: "Technical Analysis", Description: "Advanced charting, indicators, overlays", Status: StatusActive, Access: "PRO"},
	{Category: "News & Sentiment", Description: "Financial news aggregation, sentiment scoring", Status: StatusActive, Access: "PRO"},
	{Category: "Risk Analytics", Description: "VaR, stress testing, correlation analysis", Status: StatusActive, Access: "ENTERPRISE"},
	{Category: "Algo Trading", Description: "Strategy backtesting, execution algorithms", Status: StatusBeta, Access: "ENTERPRISE"},
	{Category: "Options Analytics", Description: "Greeks, volatility surface, strategies", Status: StatusActive, Access: "PRO"},
	{Category: "Fixed Income", Description: "Bond analytics, yield curves, duration", Status: StatusActive, Access: "ENTERPRISE"},
	{Category: "ESG Analytics", Description: "Sustainability metrics, ESG scoring", Status: StatusComingSoon, Access: "PRO"},
	{Category: "AI Insights", Description: "Machine learning predictions, pattern recognition", Status: StatusBeta, Access: "ENTERPRISE"},
}

var endpoints = []Endpoint{
	{Path: "/api/v1/market/quotes", Method: "GET", Description: "Real-time market quotes", RateLimit: "1000/min", Auth: true},
	{Path: "/api/v1/portfolio/holdings", Method: "GET", Description: "Portfolio holdings data", RateLimit: "100/min", Auth: true},
	{Path: "/api/v1/news/latest", Method: "GET", Description: "Latest financial news", RateLimit: "500/min", Auth: false},
	{Path: "/api/v1/analytics/technical", Method: "POST", Description: "Technical analysis calculations", RateLimit: "50/min", Auth: true},
	{Path: "/api/v1/market/history", Method: "GET", Description: "Historical market data", RateLimit: "200/min", Auth: true},
	{Path: "/api/v1/user/profile", Method: "GET", Description: "User profile information", RateLimit: "10/min", Auth: true},
	{Path: "/api/v1/orders/submit", Method: "POST", Description: "Submit trading orders", RateLimit: "100/min", Auth: true},
	{Path: "/api/v1/market/screener", Method: "POST", Description: "Stock screening criteria", RateLimit: "50/min", Auth: true},
	{Path: "/api/v1/research/reports", Method: "GET", Description: "Research reports access", RateLimit: "20/min", Auth: true},
	{Path: "/api/v1/alerts/manage", Method: "POST", Description: "Manage price alerts", RateLimit: "100/min", Auth: true},
}

// Topics returns the help navigator rows.
func Topics() []Topic { return append([]Topic(nil), topics...) }

// Features returns the features table rows.
func Features() []Feature { return append([]Feature(nil), features...) }

// Endpoints returns the API documentation rows.
func Endpoints() []Endpoint { return append([]Endpoint(nil), endpoints...) }

// About block.

const (
	ProductName    = "Fincept Financial Terminal"
	ProductTagline = "Professional Trading & Analytics Platform"
	HelpVersion    = "4.2.1"
	LastUpdated    = "2025-01-15"
)

const AboutOverview = "Fincept Terminal is a cutting-edge financial analysis platform designed to provide " +
	"real-time market data, portfolio management, and actionable insights to investors, traders, " +
	"and financial professionals. Our platform integrates advanced analytics, AI-driven sentiment analysis, " +
	"and the latest market trends to help you make well-informed investment decisions."

func AboutFacts() []Fact {
	return []Fact{
		{"Version", "4.2.1 Professional"},
		{"Build", "20250115.1"},
		{"License", "Enterprise"},
		{"Data Sources", "Real-time"},
		{"API Status", "Connected"},
	}
}

func CoreFeatures() []string {
	return []string{
		"Real-time market data & analytics",
		"Portfolio management & tracking",
		"Advanced charting & technical analysis",
		"Financial news & sentiment analysis",
		"Risk management tools",
		"Algorithmic trading support",
		"Multi-asset class coverage",
		"Professional-grade security",
	}
}

// Support block.

func SupportContacts() []Fact {
	return []Fact{
		{"Email Support", "support@fincept.in"},
		{"Phone Support", "+1 (555) 123-4567"},
		{"Live Chat", "Available 24/7"},
		{"Response Time", "< 2 hours"},
		{"Support Hours", "24/7/365"},
	}
}

func SupportChannels() []string {
	return []string{
		"Email Support",
		"Live Chat",
		"Phone Support",
		"Documentation",
		"Video Tutorials",
		"Community Forum",
	}
}

// Side panels.

func Statistics() []Fact {
	return []Fact{
		{"Total Help Topics", "47"},
		{"Video Tutorials", "12"},
		{"FAQ Articles", "25"},
		{"API Endpoints", "156"},
	}
}

func SystemInfo() []Fact {
	return []Fact{
		{"Terminal Version", HelpVersion},
		{"Build Date", LastUpdated},
		{"Network Status", "Connected"},
		{"Data Feed", "Live"},
	}
}

func RecentTopics() []string {
	return []string{
		"How to create portfolios",
		"Setting up price alerts",
		"Understanding P&L calculations",
		"Using technical indicators",
	}
}

func QuickActions() []string {
	return []string{
		"Contact Support",
		"Send Feedback",
		"User Manual",
		"Watch Tutorials",
		"Join Community",
		"Check Updates",
		"System Settings",
		"Report Issue",
	}
}
