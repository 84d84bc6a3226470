package entity

// StoredResume is one persisted row: the key assigned on insert plus the record.
type StoredResume struct {
	ID   string `json:"id" bson:"_id"`
	Data Resume `json:"data" bson:"data"`
}
