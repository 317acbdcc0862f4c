package catalog

import "fmt"

const (
	// BinderURL launches the curriculum in a hosted JupyterLab.
	BinderURL = "http://mybinder.org/v2/gh/mangeshraut712/alpha-quant-academy/main?urlpath=lab"
	// RepoURL is the source repository for the curriculum notebooks.
	RepoURL = "https://github.com/mangeshraut712/alpha-quant-academy"
)

func init() {
	c = buildCatalog(seedTracks, seedProjects, seedDatasets)
	if err := Validate(); err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
}

// HeadlineStats returns the numbers shown on the home screen.
func HeadlineStats() Stats {
	return Stats{
		Notebooks:   22,
		Projects:    3,
		Datasets:    7,
		Hours:       100,
		Exercises:   15,
		LinesOfCode: 3500,
	}
}

var seedTracks = []Track{
	{
		ID: 1, Title: "Python Fundamentals", Icon: ">_",
		Modules: []Module{
			{"Python Basics", "curriculum/01-fundamentals/01-python-basics/01_python_basics.ipynb", "2h"},
			{"Data Structures", "curriculum/01-fundamentals/02-data-structures/01_data_structures.ipynb", "3h"},
			{"Best Practices", "curriculum/legacy/0_best_practices.ipynb", "1h"},
			{"Basic Operations", "curriculum/legacy/1_basic.ipynb", "1h"},
		},
	},
	{
		ID: 2, Title: "Data Analysis", Icon: "▥",
		Modules: []Module{
			{"NumPy Essentials", "curriculum/02-data-analysis/01-numpy-essentials/01_numpy_essentials.ipynb", "3h"},
			{"Pandas Mastery", "curriculum/02-data-analysis/02-pandas-mastery/01_pandas_mastery.ipynb", "5h"},
			{"Financial Data Ops", "curriculum/legacy/6_financial_data.ipynb", "2h"},
			{"Data Straddles", "curriculum/legacy/2_straddle.ipynb", "2h"},
		},
	},
	{
		ID: 3, Title: "Visualization & Web", Icon: "◔",
		Modules: []Module{
			{"Financial Charts", "curriculum/03-visualization/03-financial-charts/01_financial_charts.ipynb", "4h"},
			{"Advanced Plotting", "curriculum/legacy/7_advanced_plotting.ipynb", "3h"},
			{"3D Visualizations", "curriculum/legacy/9_3d_plotting.ipynb", "2h"},
			{"Web API Integration", "curriculum/legacy/4_webapi.ipynb", "3h"},
		},
	},
	{
		ID: 4, Title: "Financial Analysis", Icon: "⚡",
		Modules: []Module{
			{"Market Data APIs", "curriculum/04-financial-analysis/01-market-data-apis/01_market_data_apis.ipynb", "3h"},
			{"Options Pricing", "curriculum/04-financial-analysis/02-options-pricing/01_options_pricing.ipynb", "5h"},
			{"Portfolio Optimization", "curriculum/04-financial-analysis/03-portfolio-optimization/01_portfolio_optimization.ipynb", "5h"},
			{"Altman Z-Score", "curriculum/legacy/8_altman_z_double_prime.ipynb", "2h"},
			{"Risk Metrics", "curriculum/04-financial-analysis/04-risk-metrics/01_risk_metrics.ipynb", "4h"},
		},
	},
	{
		ID: 5, Title: "Machine Learning", Icon: "⚙",
		Modules: []Module{
			{"ML Fundamentals", "curriculum/05-machine-learning/01-ml-fundamentals/01_ml_fundamentals.ipynb", "5h"},
			{"Time Series", "curriculum/05-machine-learning/02-time-series-forecasting/01_time_series.ipynb", "6h"},
			{"Algo Trading", "curriculum/05-machine-learning/04-algorithmic-trading/01_algorithmic_trading.ipynb", "8h"},
		},
	},
	{
		ID: 6, Title: "Advanced Quant Lab", Icon: "🎓",
		Modules: []Module{
			{"Alpha Arena Demo", "projects/advanced/ai_stock_analyst/demo.ipynb", "2h"},
			{"AI Analyst Engine", "projects/advanced/ai_stock_analyst/ai_analyst.py", "5h"},
			{"Enhanced Architecture", "projects/advanced/ai_stock_analyst/enhanced_engine.py", "6h"},
			{"Multi-Model Logic", "projects/advanced/ai_stock_analyst/advanced_features.py", "4h"},
		},
	},
	{
		ID: 7, Title: "Special Topics", Icon: "⛁",
		Modules: []Module{
			{"Flight Data Analysis", "curriculum/legacy/3_flights.ipynb", "3h"},
			{"Financial Web Portal", "curriculum/legacy/5_website.ipynb", "4h"},
		},
	},
}

var seedProjects = []Project{
	{
		Level:       "Beginner",
		Title:       "Stock Portfolio Tracker",
		Description: "Track investments, calculate returns, and visualize performance using Pandas and Matplotlib.",
		File:        "projects/beginner/stock_portfolio_tracker/stock_tracker.py",
		Features:    []string{"Portfolio value tracking", "Return calculations", "Matplotlib visualizations", "Historical analysis"},
		Skills:      []string{"Pandas", "Matplotlib", "Numpy"},
		Command:     "python3 projects/beginner/stock_portfolio_tracker/stock_tracker.py",
		Preview: "portfolio = {\n" +
			"    'AAPL': {'shares': 50, 'avg_cost': 150.00},\n" +
			"    'GOOGL': {'shares': 20, 'avg_cost': 125.00},\n" +
			"    'MSFT': {'shares': 30, 'avg_cost': 350.00}\n" +
			"}",
	},
	{
		Level:       "Intermediate",
		Title:       "Financial Dashboard",
		Description: "Interactive Streamlit web app with real-time metrics, Plotly charts, and portfolio analysis.",
		File:        "projects/intermediate/financial_dashboard/app.py",
		Features:    []string{"Real-time price simulation", "Technical Indicators", "Interactive Plotly Charts", "Allocation Analysis"},
		Skills:      []string{"Streamlit", "Plotly", "Pandas"},
		Command:     "streamlit run projects/intermediate/financial_dashboard/app.py",
		Preview:     "st.metric('Sharpe Ratio', f'{sharpe:.2f}')\nst.plotly_chart(fig, use_container_width=True)",
	},
	{
		Level:       "Advanced",
		Title:       "AI Stock Analyst v2.0",
		Description: "Multi-model consensus architecture with real-time risk management and backtesting engine.",
		File:        "projects/advanced/ai_stock_analyst/enhanced_engine.py",
		Features:    []string{"Multi-Model Consensus AI", "Backtesting Simulation", "Drawdown & Volatility Shield", "Alpha Arena Architecture"},
		Skills:      []string{"Quant AI", "Risk Control", "System Design"},
		Command:     "python3 projects/advanced/ai_stock_analyst/enhanced_engine.py",
		Preview:     "class EnhancedAIAnalyst:\n    def analyze_stock(self, ticker, data):\n        # Multi-model voting logic",
	},
}

var seedDatasets = []Dataset{
	{"sample_stock_prices.csv", "5 stocks × 5 years OHLCV data", "6,300"},
	{"sample_portfolio.csv", "Portfolio holdings with costs", "7"},
	{"financial_ratios.csv", "Key metrics (P/E, ROE, etc.)", "5"},
	{"sample_options_chain.csv", "Options chain with Greeks", "18"},
	{"economic_indicators.csv", "GDP, Inflation, VIX data", "60"},
	{"transaction_history.csv", "Trading history log", "100"},
	{"alpha_signals.csv", "AI signal confidence history", "1,000"},
}

// ArenaFeatures returns the Alpha Arena feature cards.
func ArenaFeatures() []Feature {
	return []Feature{
		{
			Title:       "Consensus Architecture",
			Icon:        "🤖",
			Description: "Three specialized AI models (DeepSeek, GPT, Claude style) analyze markets independently.",
			Stats:       []string{"75%+ Confidence", "Weighted Voting", "Consensus"},
		},
		{
			Title:       "Intelligent Backtesting",
			Icon:        "⚡",
			Description: "Run 100+ simulated iterations to test strategy robustness before live capital exposure.",
			Stats:       []string{"Monte Carlo", "Outcome Prob", "Stress Test"},
		},
		{
			Title:       "Smart Risk Controls",
			Icon:        "🛡",
			Description: "Institutional-grade safeguards: Drawdown Shield, Volatility Monitor, Position Sizing.",
			Stats:       []string{"10% max DD", "ATR-based SL", "Dynamic sizing"},
		},
		{
			Title:       "Career Roadmap",
			Icon:        "🎓",
			Description: "Comprehensive path from technical basics to quantitative system design and interviews.",
			Stats:       []string{"25+ Modules", "JPMC Curated", "Job Ready"},
		},
	}
}

// ArenaCapabilities lists the control-center capabilities on the overview tab.
func ArenaCapabilities() []string {
	return []string{
		"Multi-Model Consensus", "Intelligent SL/TP",
		"Alpha Arena Simulator", "Risk Drawdown Shield",
		"Sentiment Analysis v2", "Volatility Engine", "Performance Audit",
	}
}

// ConsensusModels lists the analyst models on the models tab.
func ConsensusModels() []NamedItem {
	return []NamedItem{
		{"Technical (DeepSeek)", "Price action & Momentum"},
		{"Fundamental (GPT)", "Value & Growth metrics"},
		{"Sentiment (Claude)", "News & Social Intelligence"},
	}
}

// RiskControls lists the guardrails on the risk tab.
func RiskControls() []NamedItem {
	return []NamedItem{
		{"Drawdown Shield", "Forced pause at 10% peak-to-trough"},
		{"Daily Loss Limit", "Max 3% risk exposure per 24h"},
		{"ATR Volatility Monitor", "Dynamic position sizing"},
	}
}
