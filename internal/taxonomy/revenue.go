package taxonomy

const revenueRubric = `REVENUE MODEL FRAMEWORK

1. Choose the single mechanism that produces most of the revenue:
- Fee-for-Service: billing per project, hour or outcome for expert work
  (consultancies, agencies, law firms, freelancers)
- Markup-Resell: buying goods wholesale and selling them at a higher price
  (retailers, distributors, drop-shippers)
- Licensing: selling the right to use intellectual property, technology or content
  (software licenses, franchises, patents, royalties)
- Subscription: recurring monthly or yearly payments for ongoing access
  (streaming, SaaS, memberships)
- Production-Unit-Sales: a set price per item paid at purchase time
  (manufacturers, restaurants, books, one-off app purchases, mining)
- Commission: a fee or percentage for facilitating transactions between parties
  (brokers, agents, marketplaces)
- Advertising: selling placements and sponsorships against user attention
  (ad-supported apps, media sites, social networks)
- Rental: temporary paid access to an asset without transfer of ownership
  (equipment hire, leases, vehicle rental)

2. Narrow the choice by payment timing and value exchange:
- One-time payment points to Production-Unit-Sales, Fee-for-Service or Markup-Resell
- Recurring payment points to Subscription or Rental
- Per-transaction or audience-driven income points to Commission or Advertising
- Payment for rights points to Licensing
- Owning and selling goods, licensing rights, facilitating others' deals, leasing
  assets, granting ongoing access, monetizing attention and delivering custom
  work map to the eight models respectively

3. Validate with predictability, scalability and cash flow:
- Recurring and predictable: Subscription, Rental, Licensing
- Low marginal cost and highly scalable: Licensing, Subscription, Advertising
- Immediate cash at sale: Production-Unit-Sales, Markup-Resell, Fee-for-Service
- Variable with market volume: Commission, Advertising

4. Hybrids are common (freemium plus subscription, product plus service contract,
marketplace fees plus ads, licensing plus implementation). Name the primary source
as "main" and list meaningful secondary streams in "other".`

var revenueSpec = Spec{
	Dimension: Revenue,
	Title:     "Revenue Model",
	Role:      "You are a business model analyst classifying how a business earns its revenue.",
	Rubric:    revenueRubric,
	Allowed: []string{
		"Fee-for-Service",
		"Markup-Resell",
		"Licensing",
		"Subscription",
		"Production-Unit-Sales",
		"Commission",
		"Advertising",
		"Rental",
	},
	Example: Example{
		Main:          "Subscription",
		Other:         []string{"Advertising"},
		Justification: "Revenue comes primarily from [mechanism] paid [timing] for [value delivered]. [Scalability] and [cash flow pattern] confirm Subscription; [secondary mechanism] contributes [significance].",
	},
	OtherHint:         "revenue models",
	JustificationHint: "cite the revenue mechanism, its timing, and the validation criteria",
	Focus:             "Focus on the PRIMARY source of revenue generation",
}
