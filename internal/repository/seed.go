package repository

import "github.com/adelaplace/maitre/internal/domain"

// DefaultCatalog returns the built-in prestation catalog. It seeds the
// database on first run and serves as a static fallback in tests.
// Tarifs are base prices in euros, before any urgency adjustment.
func DefaultCatalog() *domain.Catalog {
	return &domain.Catalog{Domains: []domain.Domain{
		{
			ID:    "droit_civil_contrats",
			Label: "Droit Civil & Contrats",
			Prestations: []domain.Prestation{
				{ID: "consultation_initiale", Label: "Consultation initiale", Definition: "Premier rendez-vous d'analyse de votre situation juridique et d'orientation vers les démarches adaptées.", Tarif: 150},
				{ID: "redaction_contrat", Label: "Rédaction de contrat", Definition: "Rédaction sur mesure d'un contrat civil ou commercial adapté à votre situation.", Tarif: 400},
				{ID: "relecture_contrat", Label: "Relecture et analyse de contrat", Definition: "Analyse détaillée d'un contrat existant avec identification des clauses à risque.", Tarif: 250},
				{ID: "mise_en_demeure", Label: "Mise en demeure", Definition: "Rédaction et envoi d'une mise en demeure pour obtenir l'exécution d'une obligation.", Tarif: 200},
			},
		},
		{
			ID:    "droit_des_affaires",
			Label: "Droit des Affaires",
			Prestations: []domain.Prestation{
				{ID: "creation_entreprise", Label: "Création d'entreprise", Definition: "Accompagnement complet à la création de société : choix de la forme, statuts, immatriculation.", Tarif: 800},
				{ID: "pacte_associes", Label: "Pacte d'associés", Definition: "Rédaction d'un pacte d'associés organisant les relations entre associés de la société.", Tarif: 1200},
				{ID: "cession_fonds", Label: "Cession de fonds de commerce", Definition: "Accompagnement juridique de la cession ou de l'acquisition d'un fonds de commerce.", Tarif: 2500},
				{ID: "fusion_acquisition", Label: "Fusion-acquisition", Definition: "Conseil et rédaction des actes pour une opération de fusion ou d'acquisition de société.", Tarif: 5000},
			},
		},
		{
			ID:    "droit_immobilier_commercial",
			Label: "Droit Immobilier & Commercial",
			Prestations: []domain.Prestation{
				{ID: "redaction_bail_commercial", Label: "Rédaction de bail commercial", Definition: "Rédaction d'un bail commercial protégeant vos intérêts de bailleur ou de preneur.", Tarif: 900},
				{ID: "renouvellement_bail", Label: "Renouvellement de bail commercial", Definition: "Négociation et formalisation du renouvellement de votre bail commercial.", Tarif: 600},
				{ID: "contentieux_locatif", Label: "Contentieux locatif", Definition: "Représentation dans un litige locatif : loyers impayés, expulsion, contestation de congé.", Tarif: 1500},
				{ID: "vente_immobiliere", Label: "Accompagnement vente immobilière", Definition: "Sécurisation juridique d'une vente ou d'un achat immobilier, de la promesse à l'acte.", Tarif: 1000},
			},
		},
		{
			ID:    "droit_du_travail",
			Label: "Droit du Travail",
			Prestations: []domain.Prestation{
				{ID: "contrat_travail", Label: "Rédaction de contrat de travail", Definition: "Rédaction d'un contrat de travail conforme avec clauses adaptées au poste.", Tarif: 350},
				{ID: "procedure_licenciement", Label: "Procédure de licenciement", Definition: "Accompagnement de l'employeur ou du salarié dans une procédure de licenciement.", Tarif: 1200},
				{ID: "rupture_conventionnelle", Label: "Rupture conventionnelle", Definition: "Négociation et formalisation d'une rupture conventionnelle du contrat de travail.", Tarif: 800},
				{ID: "contentieux_prudhomal", Label: "Contentieux prud'homal", Definition: "Représentation devant le conseil de prud'hommes dans un contentieux du travail.", Tarif: 2000},
			},
		},
		{
			ID:    "droit_de_la_famille",
			Label: "Droit de la Famille",
			Prestations: []domain.Prestation{
				{ID: "procedure_divorce_amiable", Label: "Procédure de divorce à l'amiable", Definition: "Divorce par consentement mutuel : rédaction de la convention et formalités.", Tarif: 1500},
				{ID: "divorce_contentieux", Label: "Divorce contentieux", Definition: "Représentation dans une procédure de divorce contentieux devant le juge aux affaires familiales.", Tarif: 3000},
				{ID: "reglement_succession", Label: "Règlement de succession", Definition: "Accompagnement du règlement d'une succession, partage et contentieux successoral.", Tarif: 1800},
				{ID: "garde_enfants", Label: "Garde d'enfants et pension", Definition: "Fixation ou révision de la garde des enfants et de la pension alimentaire.", Tarif: 1200},
			},
		},
		{
			ID:    "droit_penal",
			Label: "Droit Pénal",
			Prestations: []domain.Prestation{
				{ID: "defense_penale", Label: "Défense pénale", Definition: "Défense devant les juridictions pénales, de l'enquête au jugement.", Tarif: 2500},
				{ID: "partie_civile", Label: "Constitution de partie civile", Definition: "Représentation de la victime et constitution de partie civile dans un procès pénal.", Tarif: 1500},
				{ID: "garde_a_vue", Label: "Assistance en garde à vue", Definition: "Assistance immédiate d'un avocat pendant une garde à vue.", Tarif: 800},
			},
		},
		{
			ID:    "propriete_intellectuelle",
			Label: "Propriété Intellectuelle & Données",
			Prestations: []domain.Prestation{
				{ID: "depot_marque", Label: "Dépôt de marque", Definition: "Recherche d'antériorité et dépôt de votre marque auprès de l'INPI.", Tarif: 600},
				{ID: "depot_brevet", Label: "Dépôt de brevet", Definition: "Accompagnement à la rédaction et au dépôt d'une demande de brevet.", Tarif: 2000},
				{ID: "contentieux_contrefacon", Label: "Contentieux en contrefaçon", Definition: "Action en contrefaçon pour défendre votre marque, brevet ou création.", Tarif: 3000},
				{ID: "conformite_rgpd", Label: "Mise en conformité RGPD", Definition: "Audit et mise en conformité de vos traitements de données personnelles au RGPD.", Tarif: 1500},
			},
		},
		{
			ID:    "entreprises_difficulte",
			Label: "Entreprises en Difficulté",
			Prestations: []domain.Prestation{
				{ID: "procedure_sauvegarde", Label: "Procédure de sauvegarde", Definition: "Ouverture et suivi d'une procédure de sauvegarde pour une entreprise en difficulté.", Tarif: 3500},
				{ID: "redressement_judiciaire", Label: "Redressement judiciaire", Definition: "Accompagnement de l'entreprise dans une procédure de redressement judiciaire.", Tarif: 4000},
				{ID: "liquidation_judiciaire", Label: "Liquidation judiciaire", Definition: "Assistance du dirigeant dans une procédure de liquidation judiciaire.", Tarif: 3000},
			},
		},
		{
			ID:    "associations_fondations",
			Label: "Associations & Fondations",
			Prestations: []domain.Prestation{
				{ID: "creation_association", Label: "Création d'association", Definition: "Rédaction des statuts et déclaration d'une association loi 1901.", Tarif: 400},
				{ID: "creation_fondation", Label: "Création de fondation", Definition: "Structuration juridique et création d'une fondation ou d'un fonds de dotation.", Tarif: 2000},
				{ID: "audit_compliance", Label: "Audit de compliance", Definition: "Audit de conformité réglementaire et mise en place d'un programme de compliance.", Tarif: 1800},
			},
		},
	}}
}

// PopularPrestations lists the catalog entries highlighted before any
// conversation has produced recommendations.
func PopularPrestations() [][2]string {
	return [][2]string{
		{"droit_civil_contrats", "consultation_initiale"},
		{"droit_des_affaires", "creation_entreprise"},
		{"droit_immobilier_commercial", "redaction_bail_commercial"},
		{"droit_de_la_famille", "procedure_divorce_amiable"},
	}
}
