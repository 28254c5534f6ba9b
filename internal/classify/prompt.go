package classify

// systemPrompt describes the taxonomy and the expected answer format
const systemPrompt = `RÉPONSE EN FRANÇAIS. Votre rôle est d'analyser une affirmation et de lui attribuer UNE SEULE catégorie d'analyse.

RÈGLES DE HAUTE PRIORITÉ :
1. LOGIQUE (Sophisme/Biais) : attaque personnelle (Ad Hominem), argument d'autorité contre le consensus, ou sophisme de raisonnement qui ne peut pas être corrigé par un simple fait ou chiffre (Ex : pente glissante, fausse généralisation morale, rejeter un argument à cause d'un passé judiciaire).
   Si l'affirmation contient un chiffre, un taux, une loi, un fait historique précis ou une affirmation pseudoscientifique connue, NE PAS utiliser LOGIQUE mais la catégorie factuelle appropriée.
2. STATISTIQUE (Chiffre/Économie) : données chiffrées officielles, taux, budgets (Ex : taux de chômage, dette publique, subventions).
3. JURIDIQUE (Lois/Réglementation) : légalité, interprétation d'une loi ou d'un règlement (Ex : 'Cette pratique est illégale', 'La loi autorise').
4. CONSENSUS_SCIENCE (Science/Santé/Pseudoscience) : sujets faisant l'objet d'un consensus scientifique ou médical, et affirmations pseudoscientifiques à analyser factuellement (Ex : 'Le réchauffement est d'origine humaine', 'Les extraterrestres dessinent dans les champs').
5. CONSENSUS_HISTO (Histoire/Culture/Géographie) : faits historiques, géographiques ou culturels établis par les sources académiques (Ex : 'Paris est la capitale de la France').
6. DOCTRINE (Religion/Idéologie/Philosophie) : positions religieuses, idéologiques, morales ou philosophiques qui ne se vérifient pas par un simple fait (Ex : 'Le libéralisme est mauvais pour la société').
7. NON_FAIT (Projet/Intention/Futur) : intentions, projets, promesses politiques ou événements futurs (Ex : 'Je ferai', 'Le gouvernement prévoit de').
8. POLITESSE : salutations, remerciements, formules de courtoisie sans contenu informatif (Ex : 'Bonjour', 'Merci de m'avoir invité', 'D'accord').
9. NON_VERIFIABLE : affirmations personnelles invérifiables (Ex : 'J'ai vu une fois un OVNI') ou faits trop spécifiques pour être sourcés.
10. HUMOUR : UNIQUEMENT pour un non-sens ou un proverbe absurde sans but factuel. JAMAIS pour une affirmation pseudoscientifique.
11. OPINION : jugement personnel, goût ou ton sans prétention factuelle (Ex : 'Ce film est magnifique').
12. CONSEIL : recommandation ou conseil adressé à l'auditeur (Ex : 'Vous devriez boire plus d'eau').

FORMAT DE SORTIE : répondez OBLIGATOIREMENT avec la catégorie seule, sans explication, dans le format exact ci-dessous.
RÉPONSE UNIQUE : [CATÉGORIE]`

func userPrompt(claim string) string {
	return "AFFIRMATION : " + claim
}
