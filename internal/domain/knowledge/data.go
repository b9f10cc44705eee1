package knowledge

import "github.com/turtacn/LegalAid-Assistant/pkg/types/legal"

// Situation keys used by the per-domain bundles.  The advice composer maps
// trigger words onto these keys; each key exists in exactly one bundle.
const (
	KeyFired           legal.SituationKey = "fired"
	KeyDiscrimination  legal.SituationKey = "discrimination"
	KeyHarassment      legal.SituationKey = "harassment"
	KeyArrested        legal.SituationKey = "arrested"
	KeyCharged         legal.SituationKey = "charged"
	KeyContractDispute legal.SituationKey = "contract_dispute"
	KeyPersonalInjury  legal.SituationKey = "personal_injury"
	KeyDivorce         legal.SituationKey = "divorce"
	KeyCustody         legal.SituationKey = "custody"
	KeyEviction        legal.SituationKey = "eviction"
	KeyLandlordDispute legal.SituationKey = "landlord_dispute"
)

// bundles holds the full per-domain knowledge base.  The immediate-action
// strings carry their own numbering; the composer emits them verbatim.
var bundles = map[legal.Domain]Bundle{
	legal.DomainLabor: {
		Domain: legal.DomainLabor,
		Context: "Employment law covers various aspects of the employer-employee relationship. " +
			"Key rights include: protection against discrimination, right to fair wages, " +
			"workplace safety, and protection from wrongful termination. " +
			"Employees have the right to form unions and engage in collective bargaining.",
		Rights: []string{
			"Right to minimum wage and overtime pay",
			"Protection against discrimination based on race, gender, age, disability",
			"Right to a safe workplace",
			"Protection from retaliation for reporting violations",
			"Right to family and medical leave (FMLA)",
			"Right to workers' compensation for workplace injuries",
		},
		situations: map[legal.SituationKey]legal.Situation{
			KeyFired: {
				Key:   KeyFired,
				Title: "Wrongful Termination",
				ImmediateActions: []string{
					"1. Request a written termination letter explaining the reason",
					"2. Collect all relevant documents (pay stubs, performance reviews, emails)",
					"3. Contact your state's Department of Labor",
					"4. Consider filing for unemployment benefits",
					"5. Consult with an employment attorney",
				},
				LegalOptions: []string{
					"File a complaint with the EEOC if discrimination is suspected",
					"File a wage claim if final pay is withheld",
					"Consider wrongful termination lawsuit if you have evidence",
					"Apply for unemployment benefits immediately",
				},
				Resources: []string{
					"Equal Employment Opportunity Commission (EEOC)",
					"State Department of Labor",
					"Local legal aid organizations",
					"Employment law attorneys",
				},
			},
			KeyDiscrimination: {
				Key:   KeyDiscrimination,
				Title: "Workplace Discrimination",
				ImmediateActions: []string{
					"1. Document all incidents with dates, times, and witnesses",
					"2. Report to HR in writing and keep copies",
					"3. Contact the EEOC within 180 days",
					"4. Consult with an employment attorney",
					"5. Consider filing a formal complaint",
				},
				LegalOptions: []string{
					"File EEOC complaint for federal protection",
					"File with state anti-discrimination agency",
					"Consider private lawsuit after EEOC process",
					"Seek injunctive relief to stop discrimination",
				},
				Resources: []string{
					"EEOC - Equal Employment Opportunity Commission",
					"State civil rights agencies",
					"Employment discrimination attorneys",
					"Workplace rights organizations",
				},
			},
			KeyHarassment: {
				Key:   KeyHarassment,
				Title: "Workplace Harassment",
				ImmediateActions: []string{
					"1. Tell the harasser to stop (if safe to do so)",
					"2. Report to supervisor and HR in writing",
					"3. Document all incidents with details",
					"4. Contact the EEOC or state agency",
					"5. Consider legal action if employer doesn't act",
				},
				LegalOptions: []string{
					"File harassment complaint with EEOC",
					"File with state employment agency",
					"Consider private lawsuit for damages",
					"Seek restraining order if necessary",
				},
				Resources: []string{
					"EEOC Harassment Information",
					"State employment agencies",
					"Workplace harassment attorneys",
					"Employee rights organizations",
				},
			},
		},
	},
	legal.DomainCriminal: {
		Domain: legal.DomainCriminal,
		Context: "Criminal law deals with offenses against the state or society. " +
			"Defendants have constitutional rights including due process, " +
			"right to counsel, right to remain silent, and protection from double jeopardy.",
		Rights: []string{
			"Right to remain silent (Fifth Amendment)",
			"Right to legal counsel (Sixth Amendment)",
			"Right to a speedy and public trial",
			"Protection from unreasonable searches and seizures",
			"Right to confront witnesses",
			"Protection from cruel and unusual punishment",
		},
		situations: map[legal.SituationKey]legal.Situation{
			KeyArrested: {
				Key:   KeyArrested,
				Title: "If You Are Arrested",
				ImmediateActions: []string{
					"1. Stay calm and do not resist arrest",
					"2. Exercise your right to remain silent",
					"3. Ask for a lawyer immediately",
					"4. Do not answer questions without legal counsel",
					"5. Remember: 'I want to speak to my lawyer'",
					"6. Do not consent to searches without a warrant",
				},
				LegalOptions: []string{
					"Request a public defender if you cannot afford an attorney",
					"File a motion to suppress if rights were violated",
					"Consider plea bargain negotiations",
					"Prepare for trial if pleading not guilty",
					"Appeal conviction if found guilty",
				},
				Resources: []string{
					"Public Defender Services",
					"Local criminal defense attorneys",
					"Bail bond services",
					"Legal aid organizations",
				},
			},
			KeyCharged: {
				Key:   KeyCharged,
				Title: "If You Are Charged with a Crime",
				ImmediateActions: []string{
					"1. Contact a criminal defense attorney immediately",
					"2. Do not discuss the case with anyone except your lawyer",
					"3. Gather all relevant documents and evidence",
					"4. Attend all court hearings",
					"5. Follow your attorney's advice",
				},
				LegalOptions: []string{
					"File pre-trial motions to dismiss or suppress evidence",
					"Negotiate plea agreement if appropriate",
					"Prepare for trial defense",
					"Consider alternative sentencing programs",
				},
				Resources: []string{
					"Criminal defense attorneys",
					"Public defender office",
					"Legal aid organizations",
					"Court-appointed counsel",
				},
			},
		},
	},
	legal.DomainCivil: {
		Domain: legal.DomainCivil,
		Context: "Civil law governs disputes between individuals or organizations. " +
			"It covers contracts, torts, property disputes, and personal injury cases. " +
			"Parties have the right to sue for damages and seek legal remedies.",
		Rights: []string{
			"Right to file a lawsuit",
			"Right to legal representation",
			"Right to discovery of evidence",
			"Right to a jury trial in certain cases",
			"Right to appeal decisions",
			"Right to seek damages and injunctive relief",
		},
		situations: map[legal.SituationKey]legal.Situation{
			KeyContractDispute: {
				Key:   KeyContractDispute,
				Title: "Contract Dispute",
				ImmediateActions: []string{
					"1. Review the contract terms carefully",
					"2. Document all communications with the other party",
					"3. Send a demand letter outlining your position",
					"4. Consider mediation or arbitration",
					"5. Consult with a contract attorney",
				},
				LegalOptions: []string{
					"File breach of contract lawsuit",
					"Seek specific performance",
					"Request damages for breach",
					"Consider alternative dispute resolution",
				},
				Resources: []string{
					"Contract law attorneys",
					"Mediation services",
					"Small claims court",
					"Legal aid organizations",
				},
			},
			KeyPersonalInjury: {
				Key:   KeyPersonalInjury,
				Title: "Personal Injury",
				ImmediateActions: []string{
					"1. Seek medical attention immediately",
					"2. Document the accident scene and injuries",
					"3. Collect witness statements and contact information",
					"4. Report to relevant authorities",
					"5. Contact a personal injury attorney",
				},
				LegalOptions: []string{
					"File personal injury lawsuit",
					"Negotiate settlement with insurance",
					"Seek compensation for medical expenses",
					"Request damages for pain and suffering",
				},
				Resources: []string{
					"Personal injury attorneys",
					"Medical malpractice lawyers",
					"Insurance claim specialists",
					"Accident reconstruction experts",
				},
			},
		},
	},
	legal.DomainFamily: {
		Domain: legal.DomainFamily,
		Context: "Family law covers marriage, divorce, child custody, and domestic relations. " +
			"The best interests of the child are paramount in custody decisions.",
		Rights: []string{
			"Right to file for divorce",
			"Right to seek child custody and support",
			"Right to spousal support in appropriate cases",
			"Right to visitation with children",
			"Right to equitable division of marital property",
			"Right to protection from domestic violence",
		},
		situations: map[legal.SituationKey]legal.Situation{
			KeyDivorce: {
				Key:   KeyDivorce,
				Title: "Filing for Divorce",
				ImmediateActions: []string{
					"1. Consult with a family law attorney",
					"2. Gather financial documents (bank statements, tax returns)",
					"3. Document marital assets and debts",
					"4. Consider mediation for uncontested divorce",
					"5. File divorce petition in appropriate court",
				},
				LegalOptions: []string{
					"File for uncontested divorce if both parties agree",
					"File for contested divorce if disputes exist",
					"Seek temporary orders for support/custody",
					"Request property division and spousal support",
				},
				Resources: []string{
					"Family law attorneys",
					"Divorce mediators",
					"Financial advisors",
					"Child custody evaluators",
				},
			},
			KeyCustody: {
				Key:   KeyCustody,
				Title: "Child Custody Dispute",
				ImmediateActions: []string{
					"1. Document your involvement in child's life",
					"2. Keep records of all child-related expenses",
					"3. Consider mediation to resolve disputes",
					"4. File for custody modification if needed",
					"5. Consult with family law attorney",
				},
				LegalOptions: []string{
					"File for joint or sole custody",
					"Request visitation schedule modification",
					"Seek child support modification",
					"File for emergency custody if necessary",
				},
				Resources: []string{
					"Family law attorneys",
					"Child custody mediators",
					"Parenting coordinators",
					"Child support enforcement agencies",
				},
			},
		},
	},
	legal.DomainProperty: {
		Domain: legal.DomainProperty,
		Context: "Property law governs ownership and use of real and personal property. " +
			"It includes landlord-tenant law, real estate transactions, and property rights.",
		Rights: []string{
			"Right to quiet enjoyment of property",
			"Right to fair housing without discrimination",
			"Right to proper notice before eviction",
			"Right to habitable living conditions",
			"Right to security deposit return",
			"Right to privacy in rental property",
		},
		situations: map[legal.SituationKey]legal.Situation{
			KeyEviction: {
				Key:   KeyEviction,
				Title: "Facing Eviction",
				ImmediateActions: []string{
					"1. Review your lease agreement carefully",
					"2. Check if eviction notice is legally valid",
					"3. Contact legal aid or tenant rights organization",
					"4. Consider negotiating with landlord",
					"5. File answer to eviction lawsuit if served",
				},
				LegalOptions: []string{
					"File motion to dismiss if notice is defective",
					"Request rent abatement for uninhabitable conditions",
					"Counter-sue for landlord violations",
					"Request emergency stay of eviction",
				},
				Resources: []string{
					"Tenant rights organizations",
					"Legal aid housing attorneys",
					"Local housing authorities",
					"Tenant advocacy groups",
				},
			},
			KeyLandlordDispute: {
				Key:   KeyLandlordDispute,
				Title: "Landlord-Tenant Dispute",
				ImmediateActions: []string{
					"1. Document all communications with landlord",
					"2. Take photos of any property issues",
					"3. Send written notice of problems",
					"4. Contact local housing authority",
					"5. Consider legal action if necessary",
				},
				LegalOptions: []string{
					"File complaint with housing authority",
					"Sue for return of security deposit",
					"Request rent abatement for repairs",
					"File for emergency repairs if needed",
				},
				Resources: []string{
					"Housing authority",
					"Tenant rights attorneys",
					"Local tenant organizations",
					"Building code enforcement",
				},
			},
		},
	},
}

// references are the statutory pointers surfaced alongside analysis results.
var references = map[legal.Domain][]string{
	legal.DomainLabor: {
		"Title VII of the Civil Rights Act of 1964",
		"Fair Labor Standards Act (FLSA)",
		"Americans with Disabilities Act (ADA)",
		"Family and Medical Leave Act (FMLA)",
	},
	legal.DomainCriminal: {
		"U.S. Constitution (Bill of Rights)",
		"Miranda v. Arizona (1966)",
		"Gideon v. Wainwright (1963)",
	},
	legal.DomainCivil: {
		"State civil procedure rules",
		"Contract law principles",
		"Tort law standards",
	},
	legal.DomainFamily: {
		"State family law statutes",
		"Uniform Child Custody Jurisdiction Act",
		"Child Support Guidelines",
	},
	legal.DomainProperty: {
		"Fair Housing Act",
		"State landlord-tenant laws",
		"Real estate transaction laws",
	},
}

// searchTable pairs a domain's statute rows with its case-law rows.  Statute
// order within a table is significant: the search sort is stable, so equal
// relevance scores resolve to table order.
type searchTable struct {
	statutes []legal.Statute
	cases    []legal.Case
}

var searchTables = map[legal.Domain]searchTable{
	legal.DomainLabor: {
		statutes: []legal.Statute{
			{
				Title:          "Title VII of the Civil Rights Act of 1964",
				Description:    "Prohibits employment discrimination based on race, color, religion, sex, or national origin",
				Section:        "42 U.S.C. § 2000e",
				RelevanceScore: 0.95,
			},
			{
				Title:          "Fair Labor Standards Act (FLSA)",
				Description:    "Establishes minimum wage, overtime pay, and child labor standards",
				Section:        "29 U.S.C. § 201",
				RelevanceScore: 0.90,
			},
			{
				Title:          "Americans with Disabilities Act (ADA)",
				Description:    "Prohibits discrimination against individuals with disabilities in employment",
				Section:        "42 U.S.C. § 12101",
				RelevanceScore: 0.85,
			},
		},
		cases: []legal.Case{
			{
				Title:       "Griggs v. Duke Power Co.",
				Year:        1971,
				Description: "Established disparate impact theory in employment discrimination",
				Citation:    "401 U.S. 424",
			},
			{
				Title:       "Meritor Savings Bank v. Vinson",
				Year:        1986,
				Description: "Recognized hostile work environment as form of sexual harassment",
				Citation:    "477 U.S. 57",
			},
		},
	},
	legal.DomainCriminal: {
		statutes: []legal.Statute{
			{
				Title:          "Fourth Amendment",
				Description:    "Protects against unreasonable searches and seizures",
				Section:        "U.S. Constitution",
				RelevanceScore: 0.95,
			},
			{
				Title:          "Fifth Amendment",
				Description:    "Right to remain silent and protection against self-incrimination",
				Section:        "U.S. Constitution",
				RelevanceScore: 0.90,
			},
			{
				Title:          "Sixth Amendment",
				Description:    "Right to counsel and speedy trial",
				Section:        "U.S. Constitution",
				RelevanceScore: 0.90,
			},
		},
		cases: []legal.Case{
			{
				Title:       "Miranda v. Arizona",
				Year:        1966,
				Description: "Established Miranda rights for criminal suspects",
				Citation:    "384 U.S. 436",
			},
			{
				Title:       "Gideon v. Wainwright",
				Year:        1963,
				Description: "Established right to counsel for indigent defendants",
				Citation:    "372 U.S. 335",
			},
		},
	},
	legal.DomainCivil: {
		statutes: []legal.Statute{
			{
				Title:          "Federal Rules of Civil Procedure",
				Description:    "Rules governing civil litigation in federal courts",
				Section:        "28 U.S.C. App.",
				RelevanceScore: 0.85,
			},
			{
				Title:          "Uniform Commercial Code",
				Description:    "Governs commercial transactions and contracts",
				Section:        "Various state adoptions",
				RelevanceScore: 0.80,
			},
		},
		cases: []legal.Case{
			{
				Title:       "Palsgraf v. Long Island Railroad Co.",
				Year:        1928,
				Description: "Established proximate cause in negligence cases",
				Citation:    "248 N.Y. 339",
			},
		},
	},
	legal.DomainFamily: {
		statutes: []legal.Statute{
			{
				Title:          "Uniform Child Custody Jurisdiction Act",
				Description:    "Governs jurisdiction in child custody disputes",
				Section:        "State adoptions",
				RelevanceScore: 0.90,
			},
			{
				Title:          "Child Support Guidelines",
				Description:    "Federal guidelines for child support calculations",
				Section:        "45 C.F.R. § 302.56",
				RelevanceScore: 0.85,
			},
		},
		cases: []legal.Case{
			{
				Title:       "Troxel v. Granville",
				Year:        2000,
				Description: "Established parental rights in custody disputes",
				Citation:    "530 U.S. 57",
			},
		},
	},
	legal.DomainProperty: {
		statutes: []legal.Statute{
			{
				Title:          "Fair Housing Act",
				Description:    "Prohibits discrimination in housing",
				Section:        "42 U.S.C. § 3601",
				RelevanceScore: 0.90,
			},
			{
				Title:          "Uniform Residential Landlord and Tenant Act",
				Description:    "Model law for landlord-tenant relationships",
				Section:        "State adoptions",
				RelevanceScore: 0.85,
			},
		},
		cases: []legal.Case{
			{
				Title:       "Kelo v. City of New London",
				Year:        2005,
				Description: "Expanded eminent domain for economic development",
				Citation:    "545 U.S. 469",
			},
		},
	},
}

var formTables = map[legal.Domain][]legal.Form{
	legal.DomainLabor: {
		{Name: "EEOC Charge Form", Description: "Employment discrimination complaint"},
		{Name: "Wage Claim Form", Description: "Unpaid wages complaint"},
		{Name: "OSHA Complaint Form", Description: "Workplace safety violation"},
	},
	legal.DomainCriminal: {
		{Name: "Motion to Suppress", Description: "Challenge evidence admissibility"},
		{Name: "Bail Application", Description: "Request for bail"},
		{Name: "Plea Agreement", Description: "Guilty plea terms"},
	},
	legal.DomainCivil: {
		{Name: "Complaint Form", Description: "File a lawsuit"},
		{Name: "Motion for Summary Judgment", Description: "Request judgment without trial"},
		{Name: "Discovery Request", Description: "Request evidence from opposing party"},
	},
	legal.DomainFamily: {
		{Name: "Divorce Petition", Description: "File for divorce"},
		{Name: "Custody Agreement", Description: "Child custody arrangement"},
		{Name: "Child Support Modification", Description: "Modify child support"},
	},
	legal.DomainProperty: {
		{Name: "Eviction Notice", Description: "Notice to vacate property"},
		{Name: "Lease Agreement", Description: "Rental property contract"},
		{Name: "Property Damage Claim", Description: "Claim for property damage"},
	},
}

var resourceTables = map[legal.Domain][]legal.Resource{
	legal.DomainLabor: {
		{Name: "Department of Labor", URL: "https://www.dol.gov/", Description: "Federal labor law information"},
		{Name: "Equal Employment Opportunity Commission", URL: "https://www.eeoc.gov/", Description: "Employment discrimination resources"},
		{Name: "National Labor Relations Board", URL: "https://www.nlrb.gov/", Description: "Union and collective bargaining information"},
	},
	legal.DomainCriminal: {
		{Name: "Public Defender Services", URL: "https://www.justice.gov/defender", Description: "Free legal representation"},
		{Name: "Bail Bond Information", URL: "#", Description: "Information about bail and bonds"},
		{Name: "Court System Resources", URL: "#", Description: "Court procedures and forms"},
	},
	legal.DomainCivil: {
		{Name: "Legal Aid Organizations", URL: "#", Description: "Free legal services for low-income individuals"},
		{Name: "Small Claims Court", URL: "#", Description: "Information about small claims procedures"},
		{Name: "Alternative Dispute Resolution", URL: "#", Description: "Mediation and arbitration services"},
	},
}
