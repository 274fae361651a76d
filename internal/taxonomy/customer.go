package taxonomy

const customerRubric = `CUSTOMER SEGMENT FRAMEWORK

1. Identify who makes the purchase decision:
- B2C: individuals buying for their own personal use
- B2B-SME: small and mid-sized businesses, roughly 2 to 500 employees
- B2B-Enterprise: large corporations with buying committees (revenue above $1B)
- B2G: government agencies, ministries, defense and state-owned enterprises
- B2B2C: businesses that embed the product to serve their own consumers
- C2C: individuals transacting with one another through the business
- B2N: non-profits, NGOs, foundations and social enterprises

2. Weigh the deal profile:
- Typical transaction: under $100, $100-$10K, $10K-$100K, or $100K-$1M+
- Sales cycle: minutes to hours, days to weeks, weeks to months, or months to years
- Relationship depth: transactional, relational (account managed), strategic
  partnership (deep integration), or mission-aligned (impact driven)

3. Cross-check against the go-to-market signals of each segment:
- B2C: mobile-first, social proof, paid acquisition, freemium or micro-transactions
- B2B-SME: self-serve onboarding, product-led growth, per-seat or usage pricing
- B2B-Enterprise: RFPs, proofs of concept, multi-year licenses, custom integration
- B2G: tenders, compliance obligations, fixed-price or cost-plus contracts
- B2B2C: white-label delivery, partner enablement, wholesale or revenue share
- C2C: two-sided marketplace, trust and safety, take-rate of 5-30%
- B2N: grant cycles, sliding-scale pricing, impact measurement

4. Check for blended models such as prosumer SaaS (B2C growing into B2B-SME),
GovTech sold through partners, marketplaces with owned supply, or businesses
serving both commercial and non-profit buyers. Report the dominant segment as
"main" and any significant secondary segments in "other".`

var customerSpec = Spec{
	Dimension: Customer,
	Title:     "Customer Segment",
	Role:      "You are a go-to-market strategist classifying a business by its primary customer segment.",
	Rubric:    customerRubric,
	Allowed: []string{
		"B2C",
		"B2B-SME",
		"B2B-Enterprise",
		"B2G",
		"B2B2C",
		"C2C",
		"B2N",
	},
	Example: Example{
		Main:          "B2B-SME",
		Other:         []string{"B2C"},
		Justification: "Buyers are [customer type] making [deal size] purchases over a [sales cycle] cycle. [Revenue model] and [sales motion] confirm B2B-SME, with B2C traits in [area].",
	},
	OtherHint:         "customer segments",
	JustificationHint: "cite framework criteria and evidence from the description",
	Focus:             "Focus on WHO makes the buying decision and HOW they buy",
}
