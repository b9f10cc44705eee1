package translate

import "github.com/turtacn/LegalAid-Assistant/pkg/types/legal"

// supportedLanguages is the advertised language table, keyed by ISO 639-1.
var supportedLanguages = map[string]string{
	"en": "English",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"it": "Italian",
	"pt": "Portuguese",
	"ru": "Russian",
	"zh": "Chinese",
	"ja": "Japanese",
	"ko": "Korean",
	"ar": "Arabic",
	"hi": "Hindi",
	"bn": "Bengali",
	"ur": "Urdu",
	"tr": "Turkish",
	"nl": "Dutch",
	"sv": "Swedish",
	"no": "Norwegian",
	"da": "Danish",
	"fi": "Finnish",
}

// pair is one ordered replacement: from is always the English term.
type pair struct {
	from string
	to   string
}

// dictionaries holds the per-pair vocabulary.  Order within a list is the
// replacement order and must not be reshuffled.
var dictionaries = map[string]map[string][]pair{
	"en": {
		"es": {
			{"rights", "derechos"},
			{"law", "ley"},
			{"legal", "legal"},
			{"employment", "empleo"},
			{"work", "trabajo"},
			{"fired", "despedido"},
			{"discrimination", "discriminación"},
			{"harassment", "acoso"},
			{"wage", "salario"},
			{"overtime", "horas extra"},
			{"safety", "seguridad"},
			{"termination", "terminación"},
			{"contract", "contrato"},
			{"court", "tribunal"},
			{"judge", "juez"},
			{"attorney", "abogado"},
			{"lawsuit", "demanda"},
			{"damages", "daños"},
			{"compensation", "compensación"},
			{"divorce", "divorcio"},
			{"custody", "custodia"},
			{"child support", "manutención infantil"},
			{"property", "propiedad"},
			{"landlord", "propietario"},
			{"tenant", "inquilino"},
			{"rent", "alquiler"},
			{"eviction", "desalojo"},
		},
		"fr": {
			{"rights", "droits"},
			{"law", "loi"},
			{"legal", "légal"},
			{"employment", "emploi"},
			{"work", "travail"},
			{"fired", "licencié"},
			{"discrimination", "discrimination"},
			{"harassment", "harcèlement"},
			{"wage", "salaire"},
			{"overtime", "heures supplémentaires"},
			{"safety", "sécurité"},
			{"termination", "licenciement"},
			{"contract", "contrat"},
			{"court", "tribunal"},
			{"judge", "juge"},
			{"attorney", "avocat"},
			{"lawsuit", "procès"},
			{"damages", "dommages"},
			{"compensation", "compensation"},
			{"divorce", "divorce"},
			{"custody", "garde"},
			{"child support", "pension alimentaire"},
			{"property", "propriété"},
			{"landlord", "propriétaire"},
			{"tenant", "locataire"},
			{"rent", "loyer"},
			{"eviction", "expulsion"},
		},
		"de": {
			{"rights", "Rechte"},
			{"law", "Gesetz"},
			{"legal", "rechtlich"},
			{"employment", "Beschäftigung"},
			{"work", "Arbeit"},
			{"fired", "gekündigt"},
			{"discrimination", "Diskriminierung"},
			{"harassment", "Belästigung"},
			{"wage", "Lohn"},
			{"overtime", "Überstunden"},
			{"safety", "Sicherheit"},
			{"termination", "Kündigung"},
			{"contract", "Vertrag"},
			{"court", "Gericht"},
			{"judge", "Richter"},
			{"attorney", "Anwalt"},
			{"lawsuit", "Klage"},
			{"damages", "Schadensersatz"},
			{"compensation", "Entschädigung"},
			{"divorce", "Scheidung"},
			{"custody", "Sorgerecht"},
			{"child support", "Kindesunterhalt"},
			{"property", "Eigentum"},
			{"landlord", "Vermieter"},
			{"tenant", "Mieter"},
			{"rent", "Miete"},
			{"eviction", "Räumung"},
		},
	},
}

// domainLabels localises the legal domain display names.
var domainLabels = map[legal.Domain]map[string]string{
	legal.DomainLabor: {
		"en": "Labor Law",
		"es": "Derecho Laboral",
		"fr": "Droit du Travail",
		"de": "Arbeitsrecht",
		"it": "Diritto del Lavoro",
		"pt": "Direito do Trabalho",
	},
	legal.DomainCriminal: {
		"en": "Criminal Law",
		"es": "Derecho Penal",
		"fr": "Droit Pénal",
		"de": "Strafrecht",
		"it": "Diritto Penale",
		"pt": "Direito Penal",
	},
	legal.DomainCivil: {
		"en": "Civil Law",
		"es": "Derecho Civil",
		"fr": "Droit Civil",
		"de": "Zivilrecht",
		"it": "Diritto Civile",
		"pt": "Direito Civil",
	},
	legal.DomainFamily: {
		"en": "Family Law",
		"es": "Derecho de Familia",
		"fr": "Droit de la Famille",
		"de": "Familienrecht",
		"it": "Diritto di Famiglia",
		"pt": "Direito de Família",
	},
	legal.DomainProperty: {
		"en": "Property Law",
		"es": "Derecho de Propiedad",
		"fr": "Droit de la Propriété",
		"de": "Eigentumsrecht",
		"it": "Diritto di Proprietà",
		"pt": "Direito de Propriedade",
	},
}
