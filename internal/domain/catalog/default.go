package catalog

const (
	CategoryPerformanceDelivery = "Performance & Delivery"
	CategoryCollaboration       = "Collaboration & Team Engagement"
	CategoryOwnership           = "Ownership & Initiative"
	CategoryLearningGrowth      = "Learning & Growth"
	CategoryBusinessImpact      = "Business & Impact Alignment"
)

// Default returns the standard assessment catalog: five categories weighted
// 35/20/20/15/10, four equally weighted KPIs each.
func Default() *Catalog {
	c, err := New([]Category{
		{
			Name:   CategoryPerformanceDelivery,
			Weight: 35,
			KPIs: []KPIDefinition{
				{Name: "Task Completion Rate", Weight: 8.75},
				{Name: "Quality of Output", Weight: 8.75},
				{Name: "Process Efficiency", Weight: 8.75},
				{Name: "Documentation & Compliance", Weight: 8.75},
			},
		},
		{
			Name:   CategoryCollaboration,
			Weight: 20,
			KPIs: []KPIDefinition{
				{Name: "Cross-Team Communication", Weight: 5},
				{Name: "Meeting Participation", Weight: 5},
				{Name: "Collaboration Quality", Weight: 5},
				{Name: "Team Morale Contribution", Weight: 5},
			},
		},
		{
			Name:   CategoryOwnership,
			Weight: 20,
			KPIs: []KPIDefinition{
				{Name: "Accountability", Weight: 5},
				{Name: "Problem Solving", Weight: 5},
				{Name: "Innovation & Continuous Improvement", Weight: 5},
				{Name: "Dependability Index", Weight: 5},
			},
		},
		{
			Name:   CategoryLearningGrowth,
			Weight: 15,
			KPIs: []KPIDefinition{
				{Name: "Skill Advancement", Weight: 3.75},
				{Name: "Application of Learning", Weight: 3.75},
				{Name: "Growth Goal Achievement", Weight: 3.75},
				{Name: "Knowledge Sharing", Weight: 3.75},
			},
		},
		{
			Name:   CategoryBusinessImpact,
			Weight: 10,
			KPIs: []KPIDefinition{
				{Name: "Impact on KPIs", Weight: 2.5},
				{Name: "Customer or Stakeholder Feedback", Weight: 2.5},
				{Name: "Efficiency Contribution", Weight: 2.5},
				{Name: "Strategic Alignment", Weight: 2.5},
			},
		},
	})
	if err != nil {
		// The default catalog is fixed at compile time; failing to build it
		// is a programming error.
		panic(err)
	}
	return c
}
