package assistant

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/alphaquant/academy/internal/llm"
)

// rule maps trigger words to a fixed answer. Rules are checked in order
// and the first match wins.
type rule struct {
	keywords []string
	reply    string
}

var rules = []rule{
	{
		keywords: []string{"first", "start"},
		reply: "**Great question!** I recommend starting with:\n\n" +
			"1. **Track 1: Python Fundamentals** - Build a solid foundation\n" +
			"2. **Track 2: Data Analysis** - Master NumPy & Pandas\n\n" +
			"These will give you 80% of what you need for finance work. " +
			"Start with the Python Basics module - it's only 2 hours! 🚀",
	},
	{
		keywords: []string{"pandas", "dataframe"},
		reply: "**DataFrames** are like Excel spreadsheets in Python!\n\n" +
			"```python\nimport pandas as pd\n\n# Create a DataFrame\ndf = pd.DataFrame({\n" +
			"    'Stock': ['AAPL', 'GOOGL'],\n    'Price': [150.25, 125.50]\n})\n\n" +
			"# Access data\ndf['Price'].mean()  # Calculate average\n```\n\n" +
			"Check out **Track 2: Pandas Mastery** for hands-on practice!",
	},
	{
		keywords: []string{"quant", "job", "career"},
		reply: "**Quant Career Path:**\n\n" +
			"1. 📚 Master Python + Statistics\n" +
			"2. 📊 Learn financial modeling (our Track 4)\n" +
			"3. 🤖 Build ML trading strategies (Track 5)\n" +
			"4. 💼 Create portfolio projects (our 3 projects!)\n" +
			"5. 🎯 Practice coding interviews\n\n" +
			"Our AI Stock Analyst project is *perfect* for your portfolio - it shows multi-model architecture skills!",
	},
	{
		keywords: []string{"practice", "best"},
		reply: "**Python Best Practices:**\n\n" +
			"✅ Use virtual environments\n" +
			"✅ Write docstrings for functions\n" +
			"✅ Follow PEP 8 style guide\n" +
			"✅ Use type hints (Python 3.10+)\n" +
			"✅ Test with pytest\n" +
			"✅ Version control with Git\n\n" +
			"Our **Best Practices module** covers all of this in detail!",
	},
}

const defaultReply = "That's a great topic to explore! Here are some resources in our curriculum that might help:\n\n" +
	"• **Curriculum** - 26+ modules covering everything\n" +
	"• **Projects** - Hands-on practice\n" +
	"• **AI Analyst** - Advanced multi-model architecture\n\n" +
	"Feel free to ask me specific questions about Python, finance, or career advice! 🎓"

// CannedReply answers text by keyword, case-insensitively.
func CannedReply(text string) string {
	lower := strings.ToLower(text)
	for _, r := range rules {
		for _, k := range r.keywords {
			if strings.Contains(lower, k) {
				return r.reply
			}
		}
	}
	return defaultReply
}

// NewCannedProvider returns a provider that answers the latest user message
// with CannedReply. It never calls the network.
func NewCannedProvider() *llm.FuncProvider {
	return llm.NewFuncProvider(llm.ProviderCanned, func(_ context.Context, req llm.Request) (json.RawMessage, error) {
		return json.Marshal(replyOutput{Reply: CannedReply(llm.LastUserMessage(req))})
	})
}
