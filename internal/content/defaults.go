package content

// Default returns the built-in landing page copy.
func Default() *Content {
	return &Content{
		Profile: Profile{
			Name:  "Zhao Yu",
			Site:  "zhaoyu.io",
			Email: "hello@zhaoyu.io",
			Links: []Link{
				{Label: "GitHub", URL: "https://github.com/zhaoyu-io"},
				{Label: "Site", URL: "https://zhaoyu.io"},
			},
		},
		Hero: Hero{
			Badge: "SYSTEMS ARCHITECT & ATHLETE",
			Headline: Headline{
				Primary: "Built for Speed.",
				Accent:  "Engineered for Scale.",
			},
			Bio: "I am Zhao Yu, a Principal Engineer architecting high-scale media platforms. " +
				"Whether I'm shaving milliseconds off a render or chasing a sub-1:25 half-marathon, " +
				"I am driven by precision, metrics, and the relentless pursuit of speed.",
			CTA: CTA{
				Primary:   "View Architecture",
				Secondary: "Read My Philosophy",
			},
			Motto: []string{"Low Latency", "Type Safe", "Deep Focus"},
		},
		Skills: Skills{
			Skills: []Skill{
				{Name: "UI Architecture", Value: 98, Goal: 98},
				{Name: "Tech Strategy", Value: 85, Goal: 90},
				{Name: "System Design", Value: 75, Goal: 85},
				{Name: "Backend / API", Value: 45, Goal: 75},
				{Name: "DevOps / Infra", Value: 40, Goal: 70},
				{Name: "Team Leadership", Value: 85, Goal: 90},
			},
			Stats: Stats{
				YearsExp:     "9+",
				Lighthouse:   "Top 1%",
				HalfMarathon: "<1:25",
			},
		},
		Projects: []Project{
			{
				Title: "CNBC.com Next-Gen Migration",
				Description: "Architected the complete migration of CNBC.com from a legacy monolith to a " +
					"distributed Next.js edge architecture. The goal: handle millions of concurrent users " +
					"during market-moving events with zero downtime.",
				Tags: []string{"Next.js", "Edge Computing", "High Scale", "Performance"},
				Metrics: []Metric{
					{Label: "Core Web Vitals", Value: "100"},
					{Label: "Latency", Value: "-40%"},
				},
				Image:   "migration-ui",
				Diagram: "migration-arch",
			},
			{
				Title: "Generative AI Interface",
				Description: "Engineered the frontend architecture for CNBC's first consumer-facing AI tool. " +
					"Solved complex HCI challenges including latency masking for token streaming, real-time " +
					"citation rendering, and accessible state management for non-deterministic outputs.",
				Tags: []string{"React", "Streaming UI", "Accessibility", "HCI"},
				Metrics: []Metric{
					{Label: "Interaction", Value: "Real-time"},
					{Label: "User Trust", Value: "Verified Sources"},
				},
				Image:   "ai-ui",
				Diagram: "ai-state-machine",
			},
		},
		Experience: Experience{
			Companies: []string{"NBCUNIVERSAL", "CNBC", "VERCEL", "NEXT.JS", "TYPESCRIPT", "VERSANT"},
		},
		Notes: []Note{
			{
				Title: "Decoupling State from Render in LLM Streaming",
				Date:  "Feb 2026",
				Tags:  []string{"React Performance", "SSE", "60fps"},
				Content: []string{
					"The naive approach to building an AI chat interface is to connect a Server-Sent Events (SSE) " +
						"stream directly to a React state setter. Every time a new token chunk arrives (often at " +
						"sub-50ms intervals), you call `setState(prev => prev + chunk)`.",
					"**This is a performance trap.** Triggering a React reconciliation cycle on every single token " +
						"blows through the browser's 16ms frame budget, causing noticeable jank and layout thrashing " +
						"as the response grows long. The UI cannot keep up with the socket.",
					"The solution is to decouple ingestion from rendering. We utilized a mutable `useRef` buffer to " +
						"capture high-velocity incoming chunks synchronously without triggering a re-render. We then " +
						"used a throttled flush mechanism (synced with `requestAnimationFrame`) to commit that buffer " +
						"to real React state only when the browser was ready to paint the next frame.",
					"This ensured a smooth \"typewriter\" effect, regardless of the throughput of the backend " +
						"inference engine.",
				},
			},
		},
	}
}
