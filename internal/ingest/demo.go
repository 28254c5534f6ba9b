package ingest

// DemoClaims is the built-in claim list used by the demo command. It covers
// every category of the taxonomy.
var DemoClaims = []string{
	"La Terre est plate.",
	"Le changement climatique est causé par l'activité humaine.",
	"75% des Français pensent que l'IA va améliorer leur vie.",
	"Paris est la capitale de la France.",
	"La Lune est faite de fromage.",
	"La France a le droit de suspendre la Convention Européenne des Droits de l'Homme.",
	"Depuis qu'on a le métro, la criminalité a augmenté.",
	"Les jeunes d'aujourd'hui ne lisent plus de livres.",
	"Le grand professeur X a dit que le vaccin était inutile, donc je ne le prends pas.",
	"On ne peut pas écouter ce que dit ce politicien, il a été mis en examen il y a 10 ans.",
	"Le taux de chômage en France est de 7,3%.",
	"La France est le pays le plus taxé d'Europe.",
	"L'eucharistie est un sacrement pour toutes les églises protestantes.",
	"Les pyramides d'Égypte ont été construites par des esclaves.",
	"En France, la majorité pénale est fixée à 18 ans.",
	"Bonjour à tous, merci de m'avoir invité.",
	"Le gouvernement prévoit de baisser les impôts l'année prochaine.",
	"Vous devriez boire plus d'eau chaque jour.",
	"Ce film est vraiment magnifique.",
	"Femme qui rit à moitié dans son lit.",
}
