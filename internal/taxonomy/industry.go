package taxonomy

const industryRubric = `INDUSTRY AND SEGMENT FRAMEWORK

1. Pick the primary industry from core business activity:
- Power & Energy: generation, transmission, distribution, storage, energy services
- Financial/Banking: payments, lending, deposits, investment, capital markets, fintech
- Manufacturing: physical production, assembly, components, industrial services
- Technology: software, platforms, digital services, technical infrastructure
- Healthcare: medical services, pharmaceuticals, devices, health technology
- Other: none of the rubrics above fit

2. For the three segmented industries, pick the segment that matches the customer:

Power & Energy
- Residential/Prosumer: homeowners, landlords, EV owners; low-medium deals; weeks-months
- Commercial & Industrial: factories, data centers, large retailers; high deals; 6-18 months
- Regulated Utility/IPP: T&D utilities, independent power producers; very high deals; 1-3 years
- Government & EPC Projects: ministries, state utilities, EPC contractors; very high deals; 1-4 years
- Microgrid/Community Energy: co-ops, campuses, industrial parks; medium deals; 6-12 months

Financial/Banking
- Retail/Mass Market: depositors, cardholders, borrowers; very low-low deals; minutes-days
- SME Banking: small and medium business owners; low-medium deals; weeks
- Corporate & Investment Banking: treasurers and CFOs of large firms; high-very high deals; months
- FinTech/Platform Partnerships: neo-banks, wallets, marketplaces; low-medium deals; weeks-months
- Public Sector & Development: governments, development banks; high deals; months-years

Manufacturing
- OEM/Brand Owner: automotive, aerospace, electronics brands; high deals; 1-3 years
- Tier 1 System Integrator: assemblers supplying OEMs; high deals; 1-2 years
- Tier 2/3 Component Supplier: parts makers supplying Tier 1s or OEMs; medium deals; 6-12 months
- After-market & Services: end users and fleet operators; low-medium deals; days-weeks
- Contract/EMS Manufacturing: start-ups, brands and OEMs outsourcing production; medium-high deals; 3-12 months

3. Validate the segment against business characteristics:
- Deal size: very low (<$1K), low ($1K-$50K), medium ($50K-$500K), high ($500K-$5M), very high ($5M+)
- Relationship depth: transactional, relational, strategic partnership, community governance
- Asset intensity: low (digital), moderate (mixed), high (physical infrastructure), very high (heavy industry)
- Revenue logic: PPAs and tariffs for energy; interest margin, fees and revenue share for
  finance; product margin, royalties and cost-plus for manufacturing; SaaS, usage and
  platform fees for technology; fee-for-service, reimbursement and device sales for healthcare

Technology, Healthcare and Other have no segments; use the bare industry name.`

var industrySpec = Spec{
	Dimension: Industry,
	Title:     "Industry Segment",
	Role:      "You are an industry analyst classifying a business by industry and customer-oriented segment.",
	Rubric:    industryRubric,
	Allowed: []string{
		"Power & Energy - Residential/Prosumer",
		"Power & Energy - Commercial & Industrial",
		"Power & Energy - Regulated Utility/IPP",
		"Power & Energy - Government & EPC Projects",
		"Power & Energy - Microgrid/Community Energy",
		"Financial/Banking - Retail/Mass Market",
		"Financial/Banking - SME Banking",
		"Financial/Banking - Corporate & Investment Banking",
		"Financial/Banking - FinTech/Platform Partnerships",
		"Financial/Banking - Public Sector & Development",
		"Manufacturing - OEM/Brand Owner",
		"Manufacturing - Tier 1 System Integrator",
		"Manufacturing - Tier 2/3 Component Supplier",
		"Manufacturing - After-market & Services",
		"Manufacturing - Contract/EMS Manufacturing",
		"Technology",
		"Healthcare",
		"Other",
	},
	Example: Example{
		Main:          "Power & Energy - Residential/Prosumer",
		Other:         []string{"Technology"},
		Justification: "The business serves [customer type] with [deal size] transactions over [sales cycle]. [Revenue mechanism] and [asset intensity] confirm Power & Energy - Residential/Prosumer, with Technology traits in [area].",
	},
	OtherHint:         "industry characteristics",
	JustificationHint: "cite rubric criteria and evidence from the description",
	Focus:             "Focus on WHO the primary customers are and HOW the business operates within its industry",
}
