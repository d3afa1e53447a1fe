package models

// CentralityRow es una fila del CSV de centralidad.
type CentralityRow struct {
	ActorID          string  `json:"actorId" bson:"actorId"`
	ActorName        string  `json:"actorName" bson:"actorName"`
	DegreeCentrality float64 `json:"degreeCentrality" bson:"degreeCentrality"`
}

// EdgeRow es una arista del grafo de co-apariciones.
// LeftID < RightID siempre.
type EdgeRow struct {
	LeftID    string `json:"leftActorId" bson:"leftActorId"`
	LeftName  string `json:"leftActorName" bson:"leftActorName"`
	RightID   string `json:"rightActorId" bson:"rightActorId"`
	RightName string `json:"rightActorName" bson:"rightActorName"`
	Weight    int    `json:"weight" bson:"weight"`
}
