package topics

const (
	// Publicado pelo pipeline de IA (ou pelo cloud-simulator em dev)
	// sempre que as coleções de palpites são regravadas na nuvem.
	TipsUpdated = "tips_updated"

	// DLQ
	TipsUpdatedDLQ = "tips_updated_dlq"
)
