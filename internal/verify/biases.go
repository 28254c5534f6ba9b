package verify

import "strings"

// Bias is a named cognitive bias or fallacy the fallacy route must pick from
type Bias struct {
	Name        string
	Description string
}

// Biases is the reference list injected into the LOGIQUE instruction
var Biases = []Bias{
	// Perception and interpretation
	{"Biais de Confirmation (Confirmation Bias)", "Tendance à privilégier les informations qui confirment nos propres croyances, et à ignorer ou discréditer celles qui les contredisent."},
	{"Biais d'Ancrage (Anchoring Bias)", "Tendance à se fier trop fortement à la première information reçue (l'ancre) pour formuler un jugement."},
	{"Biais de Disponibilité (Availability Heuristic)", "Tendance à surévaluer la probabilité d'événements facilement rappelables ou imaginables, souvent récents ou émotionnellement marquants."},
	{"Effet Dunning-Kruger", "Tendance des personnes les moins compétentes dans un domaine à surestimer leur propre compétence."},
	{"Biais Rétrospectif (Hindsight Bias)", "Tendance à croire, après qu'un événement s'est produit, qu'il était prévisible."},
	{"Effet de Cadre (Framing Effect)", "Tendance à tirer des conclusions différentes des mêmes informations selon la manière dont elles sont présentées."},
	{"Illusion de Corrélation (Illusory Correlation)", "Perception d'une relation entre deux variables alors qu'elle n'existe pas ou est beaucoup plus faible en réalité."},
	{"Biais de Négativité (Negativity Bias)", "Tendance à donner plus de poids aux expériences négatives qu'aux expériences positives ou neutres."},
	{"Biais de Ressemblance (Similarity Bias)", "Tendance à faire plus confiance à ceux qui nous ressemblent (âge, milieu social, opinions)."},
	{"Effet de Halo", "Tendance à laisser une seule caractéristique d'une personne influencer notre jugement global sur elle."},

	// Action and decision
	{"Aversion à la Perte (Loss Aversion)", "Tendance à préférer éviter une perte plutôt que d'acquérir un gain équivalent."},
	{"Biais du Statu Quo (Status Quo Bias)", "Tendance à préférer que les choses restent telles qu'elles sont, évitant le risque du changement."},
	{"Erreur Fondamentale d'Attribution", "Tendance à surestimer les facteurs personnels et à sous-estimer les facteurs situationnels pour expliquer le comportement d'autrui."},
	{"Biais d'Optimisme (Optimism Bias)", "Tendance à croire que l'on est moins susceptible que les autres de subir des événements négatifs."},
	{"Effet de Foule (Bandwagon Effect)", "Tendance à adopter une croyance en fonction du nombre de personnes qui l'ont déjà adoptée."},
	{"Effet d'Autorité (Authority Bias)", "Tendance à accorder plus de crédit à l'opinion d'une figure d'autorité, même en l'absence de preuves."},
	{"Biais de Projection (Projection Bias)", "Tendance à surestimer la mesure dans laquelle les autres partagent nos pensées et valeurs actuelles."},
	{"Biais du Choix de Soutien (Choice-Supportive Bias)", "Tendance à se souvenir de ses propres choix comme meilleurs qu'ils ne l'étaient réellement."},
	{"Effet IKEA", "Tendance à accorder une valeur disproportionnée à ce que l'on a construit soi-même."},
	{"Biais de Réactance (Reactance Bias)", "Tendance à faire l'inverse de ce qui est demandé, pour préserver son libre arbitre."},

	// Fallacies
	{"Attaque Ad Hominem", "Attaquer la personne qui émet l'argument plutôt que l'argument lui-même."},
	{"Fausse Dichotomie (Faux Dilemme)", "Présenter seulement deux options comme les seules possibles alors qu'il en existe d'autres."},
	{"Pente Glissante (Slippery Slope)", "Affirmer qu'une action entraînera inévitablement une série d'événements négatifs sans preuve causale directe."},
	{"Appel à l'Émotion (Appeal to Emotion)", "Manipuler les émotions du public au lieu d'utiliser un argument logique ou factuel."},
	{"Argument d'Ignorance (Appeal to Ignorance)", "Affirmer qu'une proposition est vraie ou fausse parce qu'aucune preuve ne démontre le contraire."},
	{"Pétition de Principe (Begging the Question)", "Utiliser la conclusion de l'argument comme l'une de ses prémisses."},
	{"Affirmation du Conséquent (Affirming the Consequent)", "Conclure que B implique A parce que A implique B."},
	{"Détournement de Sujet (Red Herring)", "Introduire un sujet non pertinent pour distraire du sujet initial."},
	{"Généralisation Hâtive (Hasty Generalization)", "Tirer une conclusion générale d'un échantillon trop petit ou non représentatif."},
	{"Biais du Tirailleur (Texas Sharpshooter Fallacy)", "Identifier un modèle dans des données aléatoires en ignorant celles qui ne correspondent pas."},
	{"Biais de Croyance (Belief Bias)", "Juger la validité d'un argument sur la plausibilité de sa conclusion plutôt que sur son raisonnement."},
	{"Erreur de l'Historien (Historian's Fallacy)", "Juger les décisions du passé avec des connaissances qui n'étaient pas disponibles à l'époque."},

	// Information, memory and social
	{"Biais de Désirabilité Sociale", "Tendance à se présenter sous un jour favorable pour correspondre aux normes sociales."},
	{"Effet Barnum (Forer Effect)", "Croire précise une description assez vague pour s'appliquer à n'importe qui."},
	{"Oubli de la Fréquence de Base (Base Rate Neglect)", "Ignorer les statistiques générales au profit d'informations spécifiques ou anecdotiques."},
	{"Biais de Saillance (Saliency Bias)", "Concentrer l'attention sur les informations les plus visibles, même si elles sont moins importantes."},
	{"Effet de Simple Exposition (Mere Exposure Effect)", "Préférer des choses simplement parce qu'on les a déjà rencontrées."},
	{"Biais de Faux Consensus (False Consensus Effect)", "Surestimer la mesure dans laquelle les autres sont d'accord avec nous."},
	{"Biais de l'Acteur-Observateur", "Attribuer nos actions au contexte et celles des autres à leur personnalité."},
	{"Biais de l'Illusion de Contrôle", "Croire que l'on peut influencer des événements sur lesquels on n'a objectivement aucune prise."},
}

// FormatBiases renders the list as "* name: description" lines
func FormatBiases(list []Bias) string {
	var sb strings.Builder
	for _, b := range list {
		sb.WriteString("\n* ")
		sb.WriteString(b.Name)
		sb.WriteString(": ")
		sb.WriteString(b.Description)
	}
	return sb.String()
}
