package catalog

// Builtin returns the curated variant catalog. Allele assignments and
// interpretations follow PharmGKB, CPIC, ClinVar and the primary
// literature; interpretation text is keyed to zygosity state.
func Builtin() *Catalog {
	return New(builtinPharm, builtinClinical, builtinTraits)
}

var builtinPharm = []PharmEntry{
	// CYP2C19 - clopidogrel, PPI, SSRI metabolism
	{Entry: Entry{ID: "rs4244285", Gene: "CYP2C19", Variant: "*2",
		IfHet:    "Intermediate metabolizer - May need dose adjustments",
		IfHomAlt: "Poor metabolizer - Reduced drug activation",
		Severity: SeverityHigh},
		Drugs: "Clopidogrel, PPIs, SSRIs"},
	{Entry: Entry{ID: "rs12248560", Gene: "CYP2C19", Variant: "*17",
		IfHet:    "Intermediate-rapid metabolizer",
		IfHomAlt: "Ultra-rapid metabolizer",
		Severity: SeverityMedium},
		Drugs: "Clopidogrel, PPIs"},

	// SLCO1B1 - statin myopathy
	{Entry: Entry{ID: "rs4149056", Gene: "SLCO1B1",
		IfHet:    "4x increased myopathy risk",
		IfHomAlt: "16x increased myopathy risk - Avoid high-dose simvastatin",
		Severity: SeverityHigh},
		Drugs: "Statins (Simvastatin, Atorvastatin)"},

	// VKORC1 / CYP2C9 / CYP4F2 - warfarin dosing
	{Entry: Entry{ID: "rs9923231", Gene: "VKORC1",
		IfHet:    "Moderate warfarin sensitivity - 25-30% lower dose",
		IfHomAlt: "High sensitivity - Need 40% lower dose",
		Severity: SeverityHigh},
		Drugs: "Warfarin"},
	{Entry: Entry{ID: "rs1799853", Gene: "CYP2C9", Variant: "*2",
		IfHet:    "Intermediate metabolizer - 30% reduced activity",
		IfHomAlt: "Poor metabolizer - Bleeding risk",
		Severity: SeverityHigh},
		Drugs: "Warfarin, NSAIDs, Phenytoin"},
	{Entry: Entry{ID: "rs1057910", Gene: "CYP2C9", Variant: "*3",
		IfHet:    "Intermediate metabolizer - 50% reduced",
		IfHomAlt: "Poor metabolizer - High bleeding risk",
		Severity: SeverityHigh},
		Drugs: "Warfarin, NSAIDs"},
	{Entry: Entry{ID: "rs2108622", Gene: "CYP4F2",
		IfHet:    "Moderately higher warfarin dose needed",
		IfHomAlt: "Higher warfarin dose required"},
		Drugs: "Warfarin"},

	// CYP2D6 - codeine, SSRI, tamoxifen
	{Entry: Entry{ID: "rs3892097", Gene: "CYP2D6", Variant: "*4",
		IfHet:    "Intermediate metabolizer",
		IfHomAlt: "Poor metabolizer - Codeine won't work",
		Severity: SeverityHigh},
		Drugs: "Codeine, SSRIs, Tamoxifen"},
	{Entry: Entry{ID: "rs1065852", Gene: "CYP2D6", Variant: "*10",
		IfHet:    "Intermediate metabolizer - Reduced activity",
		IfHomAlt: "Poor metabolizer - Minimal drug activation",
		Severity: SeverityHigh},
		Drugs: "Codeine, SSRIs, Tamoxifen"},

	// TPMT / NUDT15 - thiopurine toxicity
	{Entry: Entry{ID: "rs1800460", Gene: "TPMT", Variant: "*3A",
		IfHet:    "Intermediate - Reduce dose 30-50%",
		IfHomAlt: "Deficient - Reduce dose 90% or avoid",
		Severity: SeverityCritical},
		Drugs: "Azathioprine, 6-MP"},
	{Entry: Entry{ID: "rs1800462", Gene: "TPMT", Variant: "*3C",
		IfHet:    "Intermediate activity",
		IfHomAlt: "Deficient",
		Severity: SeverityCritical},
		Drugs: "Azathioprine, 6-MP"},
	{Entry: Entry{ID: "rs1142345", Gene: "TPMT", Variant: "*3C",
		IfHet:    "Intermediate - Reduce dose 30-70%",
		IfHomAlt: "Deficient - Reduce dose 90% or use alternative",
		Severity: SeverityCritical},
		Drugs: "Azathioprine, 6-MP"},
	{Entry: Entry{ID: "rs116855232", Gene: "NUDT15",
		IfHet:    "Intermediate - Reduce dose 50%",
		IfHomAlt: "Deficient - Use alternative",
		Severity: SeverityCritical},
		Drugs: "Azathioprine, 6-MP"},

	// DPYD - fluoropyrimidine toxicity
	{Entry: Entry{ID: "rs3918290", Gene: "DPYD", Variant: "*2A",
		IfHet:    "Partial DPD deficiency - Reduce dose 50%",
		IfHomAlt: "Complete deficiency - AVOID (potentially fatal)",
		Severity: SeverityCritical},
		Drugs: "5-Fluorouracil, Capecitabine"},
	{Entry: Entry{ID: "rs55886062", Gene: "DPYD",
		IfHet:    "Reduced activity",
		IfHomAlt: "DPD deficiency",
		Severity: SeverityCritical},
		Drugs: "5-FU"},

	// UGT1A1 - irinotecan toxicity
	{Entry: Entry{ID: "rs4148323", Gene: "UGT1A1", Variant: "*28",
		IfHet:    "Intermediate toxicity risk",
		IfHomAlt: "High risk severe neutropenia",
		Severity: SeverityHigh},
		Drugs: "Irinotecan"},
	{Entry: Entry{ID: "rs8175347", Gene: "UGT1A1", Variant: "*28",
		IfHet:    "Intermediate neutropenia risk - Monitor closely",
		IfHomAlt: "36% neutropenia rate - Reduce irinotecan dose",
		Severity: SeverityHigh},
		Drugs: "Irinotecan"},

	// CYP3A5 - tacrolimus
	{Entry: Entry{ID: "rs776746", Gene: "CYP3A5", Variant: "*3",
		IfHet:    "Intermediate expresser (T/C)",
		IfHomAlt: "Non-expresser (C/C) - Lower dose needed"},
		Drugs: "Tacrolimus"},

	// G6PD - drug-induced hemolysis
	{Entry: Entry{ID: "rs1050828", Gene: "G6PD", Variant: "A-",
		IfHet:    "Carrier (females)",
		IfHomAlt: "G6PD deficiency - AVOID oxidative drugs",
		Severity: SeverityCritical},
		Drugs: "Primaquine, Dapsone, Rasburicase"},
	{Entry: Entry{ID: "rs1050829", Gene: "G6PD",
		IfHet:    "Possible deficiency",
		IfHomAlt: "G6PD deficiency",
		Severity: SeverityCritical},
		Drugs: "Antimalarials"},

	// HLA-B - severe drug hypersensitivity
	{Entry: Entry{ID: "rs2395029", Gene: "HLA-B", Variant: "*57:01",
		IfHet:    "Positive for HLA-B*57:01 - DO NOT USE ABACAVIR",
		IfHomAlt: "Positive - DO NOT USE ABACAVIR",
		Severity: SeverityCritical},
		Drugs: "Abacavir"},
	{Entry: Entry{ID: "rs3909184", Gene: "HLA-B", Variant: "*15:02",
		IfHet:    "Positive for *15:02 - Stevens-Johnson syndrome risk",
		IfHomAlt: "Positive - DO NOT USE carbamazepine if Asian",
		Severity: SeverityCritical},
		Drugs: "Carbamazepine"},

	// IFNL3 - hepatitis C treatment response
	{Entry: Entry{ID: "rs12979860", Gene: "IFNL3",
		IfHet:    "Intermediate HCV treatment response",
		IfHomAlt: "Poor response to interferon"},
		Drugs: "Peginterferon/Ribavirin (HCV)"},

	// CYP1A2 - caffeine metabolism (also listed as a trait)
	{Entry: Entry{ID: "rs762551", Gene: "CYP1A2", Variant: "*1F",
		IfHet:    "Intermediate caffeine metabolizer (4-5hr)",
		IfHomAlt: "Slow caffeine metabolizer (6-8hr)"},
		Drugs: "Caffeine, Clozapine"},

	// NAT2 - isoniazid metabolism
	{Entry: Entry{ID: "rs1801280", Gene: "NAT2",
		IfHet:    "Intermediate acetylator",
		IfHomAlt: "Slow acetylator - Toxicity risk"},
		Drugs: "Isoniazid"},
	{Entry: Entry{ID: "rs1799930", Gene: "NAT2", Variant: "*6",
		IfHet:    "Intermediate acetylator",
		IfHomAlt: "Slow acetylator - 36% liver injury risk with isoniazid",
		Severity: SeverityHigh},
		Drugs: "Isoniazid, Hydralazine"},

	// GSTP1 - chemotherapy toxicity
	{Entry: Entry{ID: "rs1695", Gene: "GSTP1", Variant: "Ile105Val",
		IfHet:    "Altered chemotherapy metabolism",
		IfHomAlt: "Higher hematologic toxicity, lower GI toxicity",
		Severity: SeverityMedium},
		Drugs: "Chemotherapy (Platinum, Anthracyclines)"},

	// ABCB1 - P-glycoprotein transporter
	{Entry: Entry{ID: "rs2032582", Gene: "ABCB1", Variant: "MDR1 2677T>G/A",
		IfHet:    "Altered P-glycoprotein activity - Variable drug transport",
		IfHomAlt: "Modified drug transport - Clinical significance unclear",
		Severity: SeverityMedium},
		Drugs: "Various (P-gp substrates)"},
}

var builtinClinical = []ClinicalEntry{
	// HFE - hereditary hemochromatosis
	{Entry: Entry{ID: "rs1800562", Gene: "HFE", Variant: "C282Y",
		IfHet:    "Carrier - Monitor if family history",
		IfHomAlt: "HIGH RISK - Iron overload. Need phlebotomy.",
		Action:   "Monitor ferritin and transferrin saturation"},
		Condition: "Hemochromatosis"},
	{Entry: Entry{ID: "rs1799945", Gene: "HFE", Variant: "H63D",
		IfHet:    "Carrier - Minimal risk",
		IfHomAlt: "Mild iron overload risk",
		Action:   "Monitor if symptomatic"},
		Condition: "Hemochromatosis"},

	// Thrombophilia
	{Entry: Entry{ID: "rs6025", Gene: "F5", Variant: "Factor V Leiden",
		IfHet:    "3-8x clotting risk. Avoid oral contraceptives.",
		IfHomAlt: "50-80x risk. Need anticoagulation for surgery.",
		Action:   "Prophylaxis before surgery/travel"},
		Condition: "Thrombosis"},
	{Entry: Entry{ID: "rs1799963", Gene: "F2", Variant: "Prothrombin",
		IfHet:    "2-3x clotting risk",
		IfHomAlt: "Very high risk",
		Action:   "Avoid oral contraceptives"},
		Condition: "Thrombosis"},

	// APOE - Alzheimer's disease risk
	{Entry: Entry{ID: "rs429358", Gene: "APOE", Variant: "ε4",
		IfHet:    "One ε4 copy - 3-4x increased AD risk",
		IfHomAlt: "Two ε4 copies - 8-12x increased AD risk",
		Action:   "Cardiovascular health, exercise, cognitive engagement"},
		Condition: "Alzheimer's Disease"},
	{Entry: Entry{ID: "rs7412", Gene: "APOE", Variant: "ε2",
		IfHet:    "One ε2 - Protective against AD (40% risk reduction)",
		IfHomAlt: "Two ε2 - Strong AD protection",
		Action:   "Monitor lipids (ε2 associated with Type III hyperlipidemia)"},
		Condition: "Alzheimer's Disease"},

	// MTHFR - homocysteine metabolism
	{Entry: Entry{ID: "rs1801133", Gene: "MTHFR", Variant: "C677T",
		IfHet:    "30-35% reduced enzyme - Usually benign (65% activity)",
		IfHomAlt: "60-70% reduced enzyme - May elevate homocysteine (30% activity)",
		Action:   "B vitamins (folate, B6, B12)"},
		Condition: "Elevated Homocysteine"},
	{Entry: Entry{ID: "rs1801131", Gene: "MTHFR", Variant: "A1298C",
		IfHet:    "Mildly reduced activity",
		IfHomAlt: "Moderately reduced",
		Action:   "B vitamin supplementation"},
		Condition: "Homocysteine"},

	// Celiac disease
	{Entry: Entry{ID: "rs2187668", Gene: "HLA-DQ", Variant: "DQ2.5",
		IfHet:    "Moderate celiac risk",
		IfHomAlt: "High genetic risk",
		Action:   "Test if GI symptoms"},
		Condition: "Celiac Disease"},

	// Lactase persistence
	{Entry: Entry{ID: "rs4988235", Gene: "MCM6", Variant: "LCT",
		IfHet:    "Likely lactose tolerant (A/G)",
		IfHomAlt: "Lactose tolerant - persistence allele (A/A)",
		Note:     "G/G genotype = lactose intolerant"},
		Condition: "Lactose Intolerance"},

	// Alpha-1 antitrypsin deficiency
	{Entry: Entry{ID: "rs28929474", Gene: "SERPINA1", Variant: "Z allele",
		IfHet:    "Carrier (MZ) - Usually OK",
		IfHomAlt: "ZZ - High risk emphysema/liver disease",
		Action:   "DO NOT SMOKE"},
		Condition: "A1AT Deficiency"},
	{Entry: Entry{ID: "rs17580", Gene: "SERPINA1", Variant: "S allele",
		IfHet:    "Carrier",
		IfHomAlt: "Mild deficiency"},
		Condition: "A1AT"},

	// Age-related macular degeneration
	{Entry: Entry{ID: "rs1061170", Gene: "CFH", Variant: "Y402H",
		IfHet:    "2-3x AMD risk",
		IfHomAlt: "5-7x AMD risk",
		Action:   "Regular eye exams, don't smoke, AREDS vitamins"},
		Condition: "Macular Degeneration"},

	// Type 2 diabetes / obesity
	{Entry: Entry{ID: "rs7903146", Gene: "TCF7L2",
		IfHet:    "1.4x T2D risk - Impaired insulin secretion",
		IfHomAlt: "2x T2D risk - Strong genetic predisposition",
		Action:   "Maintain healthy weight, regular exercise, monitor glucose",
		Severity: SeverityHigh},
		Condition: "Type 2 Diabetes"},
	{Entry: Entry{ID: "rs9939609", Gene: "FTO",
		IfHet:    "1.4x increased obesity risk",
		IfHomAlt: "1.6x obesity risk - Higher appetite regulation issues",
		Action:   "Diet control, regular physical activity, avoid high-sugar foods",
		Severity: SeverityMedium},
		Condition: "Obesity Susceptibility"},

	// Autoimmune disease risk
	{Entry: Entry{ID: "rs2476601", Gene: "PTPN22", Variant: "R620W",
		IfHet:    "Increased risk: Type 1 diabetes, RA, lupus, thyroiditis",
		IfHomAlt: "High autoimmune disease risk - Multiple conditions",
		Action:   "Monitor for autoimmune symptoms, regular check-ups",
		Severity: SeverityHigh},
		Condition: "Autoimmune Disease Risk"},

	// Coronary artery disease
	{Entry: Entry{ID: "rs1333049", Gene: "Chr9p21",
		IfHet:    "1.2-1.3x CAD risk",
		IfHomAlt: "1.4-1.6x CAD/MI risk - Recurrent event risk",
		Action:   "Heart-healthy diet, exercise, manage BP/cholesterol, no smoking",
		Severity: SeverityHigh},
		Condition: "Coronary Artery Disease"},

	// Sickle cell
	{Entry: Entry{ID: "rs334", Gene: "HBB", Variant: "Glu6Val (HbS)",
		IfHet:    "Sickle cell trait - 86% malaria protection",
		IfHomAlt: "Sickle cell disease - Requires medical management",
		Action:   "Genetic counseling, screening, malaria protection advantage",
		Severity: SeverityCritical},
		Condition: "Sickle Cell"},
}

var builtinTraits = []TraitEntry{
	// Appearance
	{Entry: Entry{ID: "rs12913832", Gene: "HERC2",
		IfHet:    "Green/hazel eyes likely (intermediate melanin)",
		IfHomAlt: "Blue eyes (99% prediction accuracy)",
		Note:     "A/A = Brown eyes (99%), G/G = Blue eyes (99%)"},
		Trait: "Eye Color", SubCategory: "Appearance"},
	{Entry: Entry{ID: "rs1800407", Gene: "OCA2",
		IfHet:    "Slightly lighter eyes",
		IfHomAlt: "Lighter eyes"},
		Trait: "Eye Color modifier", SubCategory: "Appearance"},
	{Entry: Entry{ID: "rs1805007", Gene: "MC1R", Variant: "R151C",
		IfHet:    "Carrier of red hair allele",
		IfHomAlt: "Likely red hair, very fair skin, freckles"},
		Trait: "Red Hair", SubCategory: "Appearance"},
	{Entry: Entry{ID: "rs1805008", Gene: "MC1R", Variant: "R160W",
		IfHet:    "Red hair carrier - Some freckling possible",
		IfHomAlt: "Red hair, very fair skin, heavy freckling",
		Note:     "Increased melanoma risk, altered anesthesia response"},
		Trait: "Red Hair/Freckles", SubCategory: "Appearance"},
	{Entry: Entry{ID: "rs1805009", Gene: "MC1R",
		IfHet:    "Carrier",
		IfHomAlt: "Red hair likely"},
		Trait: "Red Hair", SubCategory: "Appearance"},
	{Entry: Entry{ID: "rs12203592", Gene: "IRF4",
		IfHet:    "Increased freckling, moderate sun sensitivity",
		IfHomAlt: "High freckling, brown hair, blue eyes, low tanning",
		Note:     "One of only 2 genes (with TYR) affecting skin/eye/hair/freckles"},
		Trait: "Freckling/Hair Color", SubCategory: "Appearance"},
	{Entry: Entry{ID: "rs16891982", Gene: "SLC45A2",
		IfHet:    "Intermediate pigmentation",
		IfHomAlt: "Lighter skin/hair"},
		Trait: "Skin Pigmentation", SubCategory: "Appearance"},
	{Entry: Entry{ID: "rs3827760", Gene: "EDAR", Variant: "V370A",
		IfHet:    "Moderately thicker hair, some East Asian features",
		IfHomAlt: "Thick coarse hair, shovel incisors (East Asian)",
		Note:     "Also affects sweat glands, breast size, facial features"},
		Trait: "Hair Thickness/Tooth Shape", SubCategory: "Appearance"},
	{Entry: Entry{ID: "rs1426654", Gene: "SLC24A5", Variant: "A111T",
		IfHet:    "Lighter skin pigmentation",
		IfHomAlt: "Light skin (European) - 25-40% lighter than A/A",
		Note:     "Fixed in European populations (99%), strong selection signal"},
		Trait: "Skin Pigmentation", SubCategory: "Appearance"},
	{Entry: Entry{ID: "rs356182", Gene: "SNCA",
		IfHet:    "Wavy hair",
		IfHomAlt: "Curly hair likely"},
		Trait: "Hair Curl", SubCategory: "Appearance"},
	{Entry: Entry{ID: "rs6152", Gene: "AR",
		IfHet:    "Moderate baldness risk",
		IfHomAlt: "Higher risk early baldness"},
		Trait: "Male Pattern Baldness", SubCategory: "Appearance"},
	{Entry: Entry{ID: "rs17822931", Gene: "ABCC11",
		IfHet:    "Wet earwax (G/A)",
		IfHomAlt: "Dry earwax, less body odor (A/A)",
		Note:     "Common in East Asians (80-90% A/A)"},
		Trait: "Earwax Type", SubCategory: "Appearance"},

	// Physical
	{Entry: Entry{ID: "rs1042725", Gene: "HMGA2",
		IfHet:    "Each C adds ~0.4cm",
		IfHomAlt: "Taller (~0.8cm)"},
		Trait: "Height", SubCategory: "Physical"},

	// Taste and smell
	{Entry: Entry{ID: "rs713598", Gene: "TAS2R38",
		IfHet:    "Moderate taster",
		IfHomAlt: "Supertaster - Very sensitive to bitter (G/G)"},
		Trait: "Bitter Taste (PTC)", SubCategory: "Taste"},
	{Entry: Entry{ID: "rs1726866", Gene: "TAS2R38",
		IfHet:    "Intermediate",
		IfHomAlt: "Enhanced bitter sensitivity"},
		Trait: "Bitter Taste", SubCategory: "Taste"},
	{Entry: Entry{ID: "rs10246939", Gene: "TAS2R38", Variant: "V296I",
		IfHet:    "Moderate taster (PAV/AVI)",
		IfHomAlt: "Supertaster - Very sensitive to bitter (PAV/PAV)",
		Note:     "Part of 3-SNP haplotype system determining bitter taste"},
		Trait: "Bitter Taste (PTC/PROP)", SubCategory: "Taste"},
	{Entry: Entry{ID: "rs72921001", Gene: "OR6A2",
		IfHet:    "May taste cilantro as soapy (G/A)",
		IfHomAlt: "Less likely to perceive soapy taste (A/A)"},
		Trait: "Cilantro Aversion", SubCategory: "Taste"},
	{Entry: Entry{ID: "rs12821256", Gene: "KIT",
		IfHet:    "Can smell asparagus metabolites",
		IfHomAlt: "Enhanced detection"},
		Trait: "Asparagus Odor Detection", SubCategory: "Smell"},

	// Metabolism
	{Entry: Entry{ID: "rs762551", Gene: "CYP1A2",
		IfHet:    "Intermediate caffeine metabolizer (4-5hr half-life)",
		IfHomAlt: "Slow metabolizer - Caffeine sensitive (6-8hr half-life)"},
		Trait: "Caffeine Metabolism", SubCategory: "Metabolism"},
	{Entry: Entry{ID: "rs671", Gene: "ALDH2", Variant: "*2",
		IfHet:    "Alcohol flush reaction (red face) - Asian glow",
		IfHomAlt: "Severe flush reaction, cancer risk with alcohol",
		Note:     "Protective against alcoholism but increased cancer risk with drinking"},
		Trait: "Alcohol Flush", SubCategory: "Metabolism"},
	{Entry: Entry{ID: "rs1229984", Gene: "ADH1B",
		IfHet:    "Fast alcohol metabolism",
		IfHomAlt: "Very fast - Protective against alcoholism"},
		Trait: "Alcohol Metabolism", SubCategory: "Metabolism"},
	{Entry: Entry{ID: "rs698", Gene: "ADH1C", Variant: "Ile350Val",
		IfHet:    "Moderately reduced alcohol metabolism",
		IfHomAlt: "Slower alcohol metabolism - Increased ALC risk",
		Note:     "T allele 1.5-2x less active than A allele"},
		Trait: "Alcohol Metabolism", SubCategory: "Metabolism"},
	{Entry: Entry{ID: "rs1801282", Gene: "PPARG", Variant: "Pro12Ala",
		IfHet:    "Improved insulin sensitivity vs Pro/Pro",
		IfHomAlt: "Protective - Lower T2D risk, better insulin response",
		Note:     "Ala allele improves response to diabetes medications"},
		Trait: "Insulin Sensitivity/T2D Risk", SubCategory: "Metabolism"},

	// Athletic performance
	{Entry: Entry{ID: "rs1815739", Gene: "ACTN3", Variant: "R577X",
		IfHet:    "Mixed sprinter/endurance - balanced athlete (C/T)",
		IfHomAlt: "Endurance athlete advantage (T/T) - no fast-twitch α-actinin-3",
		Note:     "C/C = Sprinter/power advantage"},
		Trait: "Muscle Fiber Type", SubCategory: "Athletic"},
	{Entry: Entry{ID: "rs1799983", Gene: "NOS3",
		IfHet:    "Moderate endurance capacity",
		IfHomAlt: "Reduced endurance capacity"},
		Trait: "Endurance", SubCategory: "Athletic"},
	{Entry: Entry{ID: "rs4646994", Gene: "ACE", Variant: "I/D",
		IfHet:    "Balanced power/endurance",
		IfHomAlt: "Power/sprint athlete genotype",
		Note:     "I/I = Endurance advantage"},
		Trait: "Power vs Endurance", SubCategory: "Athletic"},

	// Behavior
	{Entry: Entry{ID: "rs6265", Gene: "BDNF", Variant: "Val66Met",
		IfHet:    "Intermediate memory - Reduced BDNF secretion",
		IfHomAlt: "Impaired memory consolidation - Lower neuroplasticity",
		Note:     "Val/Val genotype shows 25% better memory performance"},
		Trait: "Memory/Learning", SubCategory: "Behavior"},
	{Entry: Entry{ID: "rs53576", Gene: "OXTR",
		IfHet:    "Intermediate empathy and stress reactivity",
		IfHomAlt: "Enhanced empathy, lower stress response (G/G)",
		Note:     "A/A associated with lower empathy, autism risk"},
		Trait: "Empathy/Social Behavior", SubCategory: "Behavior"},
	{Entry: Entry{ID: "rs4680", Gene: "COMT", Variant: "Val158Met",
		IfHet:    "Balanced worrier/warrior (G/A)",
		IfHomAlt: "Warrior - Better stress tolerance, lower anxiety (A/A)",
		Note:     "G/G = Worrier - Better memory, higher anxiety"},
		Trait: "Stress Response", SubCategory: "Behavior"},
	{Entry: Entry{ID: "rs1800497", Gene: "DRD2", Variant: "Taq1A",
		IfHet:    "Normal D2 receptor density",
		IfHomAlt: "Reduced D2 receptors, novelty-seeking behavior"},
		Trait: "Dopamine Receptors", SubCategory: "Behavior"},

	// Sleep
	{Entry: Entry{ID: "rs57875989", Gene: "PER3",
		IfHet:    "Intermediate chronotype",
		IfHomAlt: "Morning/evening tendency variation"},
		Trait: "Sleep Timing", SubCategory: "Sleep"},
	{Entry: Entry{ID: "rs1801260", Gene: "CLOCK", Variant: "3111T/C",
		IfHet:    "Moderate evening tendency",
		IfHomAlt: "Evening chronotype - Delayed sleep onset, less total sleep",
		Note:     "C/C: 79 min later sleep, 75 min less total sleep"},
		Trait: "Circadian Rhythm/Sleep Timing", SubCategory: "Sleep"},

	// Nutrition
	{Entry: Entry{ID: "rs7501331", Gene: "BCMO1",
		IfHet:    "30% reduced beta-carotene to vitamin A conversion",
		IfHomAlt: "60% reduced - Need more preformed vitamin A"},
		Trait: "Beta-Carotene Conversion", SubCategory: "Nutrition"},
	{Entry: Entry{ID: "rs174537", Gene: "FADS1",
		IfHet:    "Intermediate ALA to EPA/DHA conversion",
		IfHomAlt: "Reduced conversion - May benefit from direct EPA/DHA"},
		Trait: "Omega-3 Metabolism", SubCategory: "Nutrition"},

	// Pain and sensation
	{Entry: Entry{ID: "rs8065080", Gene: "TRPV1",
		IfHet:    "Normal pain perception",
		IfHomAlt: "Altered pain perception"},
		Trait: "Pain Sensitivity", SubCategory: "Sensation"},
	{Entry: Entry{ID: "rs1799971", Gene: "OPRM1", Variant: "A118G",
		IfHet:    "Moderate opioid response",
		IfHomAlt: "Reduced opioid sensitivity - may need higher doses"},
		Trait: "Pain & Opioid Response", SubCategory: "Sensation"},

	// Immune system
	{Entry: Entry{ID: "rs601338", Gene: "FUT2",
		IfHet:    "Secretor - Susceptible to norovirus",
		IfHomAlt: "Secretor - Susceptible",
		Note:     "A/A = Non-secretor, resistant to norovirus"},
		Trait: "Norovirus Resistance", SubCategory: "Immune"},
	{Entry: Entry{ID: "rs333", Gene: "CCR5", Variant: "Δ32",
		IfHet:    "Slower HIV-1 progression if infected",
		IfHomAlt: "Highly resistant to HIV-1 infection"},
		Trait: "HIV Resistance", SubCategory: "Immune"},
	{Entry: Entry{ID: "rs8176719", Gene: "ABO",
		IfHet:    "Type O or A (depends on other ABO variants)",
		IfHomAlt: "Type O - Malaria protective"},
		Trait: "Blood Type", SubCategory: "Immune"},
}
