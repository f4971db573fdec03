package trending

var articles = []Article{
	{
		ID:          "1",
		Title:       "Tech Giants Announce New AI Collaboration",
		Description: "Major tech companies are joining forces to develop ethical AI standards.",
		URL:         "https://example.com/tech-ai-collaboration",
		URLToImage:  "https://picsum.photos/id/1/600/400",
		PublishedAt: "2023-05-20T09:30:00Z",
		Source:      Source{Name: "Tech Today"},
	},
	{
		ID:          "2",
		Title:       "New Study Shows Benefits of Remote Work",
		Description: "Research indicates productivity increases with flexible work arrangements.",
		URL:         "https://example.com/remote-work-benefits",
		URLToImage:  "https://picsum.photos/id/48/600/400",
		PublishedAt: "2023-05-19T14:45:00Z",
		Source:      Source{Name: "Business Insider"},
	},
	{
		ID:          "3",
		Title:       "Climate Change Summit Reaches Historic Agreement",
		Description: "World leaders commit to ambitious carbon reduction targets.",
		URL:         "https://example.com/climate-summit",
		URLToImage:  "https://picsum.photos/id/10/600/400",
		PublishedAt: "2023-05-18T11:20:00Z",
		Source:      Source{Name: "Global News"},
	},
	{
		ID:          "4",
		Title:       "Breakthrough in Quantum Computing Announced",
		Description: "Scientists achieve quantum supremacy with new processor design.",
		URL:         "https://example.com/quantum-breakthrough",
		URLToImage:  "https://picsum.photos/id/96/600/400",
		PublishedAt: "2023-05-17T16:10:00Z",
		Source:      Source{Name: "Science Daily"},
	},
	{
		ID:          "5",
		Title:       "Global Chip Shortage Expected to Ease by Year End",
		Description: "Industry analysts predict supply chain improvements for semiconductors.",
		URL:         "https://example.com/chip-shortage",
		URLToImage:  "https://picsum.photos/id/60/600/400",
		PublishedAt: "2023-05-16T08:50:00Z",
		Source:      Source{Name: "Tech Radar"},
	},
	{
		ID:          "6",
		Title:       "New Health Study Reveals Benefits of Mediterranean Diet",
		Description: "Research confirms positive impacts on longevity and heart health.",
		URL:         "https://example.com/mediterranean-diet",
		URLToImage:  "https://picsum.photos/id/292/600/400",
		PublishedAt: "2023-05-15T13:40:00Z",
		Source:      Source{Name: "Health Journal"},
	},
	{
		ID:          "7",
		Title:       "Space Tourism Company Announces First Civilian Mission",
		Description: "Private space flight to orbit Earth with non-astronaut crew.",
		URL:         "https://example.com/space-tourism",
		URLToImage:  "https://picsum.photos/id/41/600/400",
		PublishedAt: "2023-05-14T10:15:00Z",
		Source:      Source{Name: "Space News"},
	},
}

var videos = []Video{
	{
		ID:          "1",
		URL:         "https://d23dyxeqlo5psv.cloudfront.net/big_buck_bunny.mp4",
		Poster:      "https://picsum.photos/id/237/720/1280",
		Username:    "nature_lover",
		Description: "Amazing wildlife spotted during my hike! 🌿🦌 #nature #wildlife",
		Likes:       1245,
		Comments:    89,
	},
	{
		ID:          "2",
		URL:         "https://d23dyxeqlo5psv.cloudfront.net/big_buck_bunny.mp4",
		Poster:      "https://picsum.photos/id/26/720/1280",
		Username:    "travel_addict",
		Description: "Sunset views from my latest adventure 🌅 #travel #sunset #views",
		Likes:       2389,
		Comments:    156,
	},
	{
		ID:          "3",
		URL:         "https://d23dyxeqlo5psv.cloudfront.net/big_buck_bunny.mp4",
		Poster:      "https://picsum.photos/id/96/720/1280",
		Username:    "food_guru",
		Description: "Quick recipe for the perfect breakfast! 🍳 #food #recipe #breakfast",
		Likes:       876,
		Comments:    42,
	},
	{
		ID:          "4",
		URL:         "https://d23dyxeqlo5psv.cloudfront.net/big_buck_bunny.mp4",
		Poster:      "https://picsum.photos/id/64/720/1280",
		Username:    "fitness_coach",
		Description: "Try this 30-second exercise for better posture! 💪 #fitness #workout",
		Likes:       3421,
		Comments:    211,
	},
	{
		ID:          "5",
		URL:         "https://d23dyxeqlo5psv.cloudfront.net/big_buck_bunny.mp4",
		Poster:      "https://picsum.photos/id/42/720/1280",
		Username:    "tech_reviewer",
		Description: "First look at the newest smartphone features! 📱 #tech #review",
		Likes:       1876,
		Comments:    134,
	},
}
