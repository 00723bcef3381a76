package domain

// Reference tables of the clinic. Each is written once through a single
// INSERT and never updated here.

type Designation struct {
	ID          int64  `json:"id"`
	Designation string `json:"designation"`
}

type Department struct {
	ID         int64  `json:"id"`
	Department string `json:"department"`
}

type Privilege struct {
	ID        int64  `json:"id"`
	Privilege string `json:"privilege"`
}

type Language struct {
	ID       int64  `json:"id"`
	Language string `json:"language"`
}

// Medicine keeps BasePrice in its decimal text form so no precision is lost
// on the way to the NUMERIC column.
type Medicine struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	BasePrice string `json:"base_price"`
}

type ExtraCharge struct {
	ID         int64  `json:"id"`
	ChargeType string `json:"charge_type"`
	Amount     int    `json:"amount"`
}

type Question struct {
	ID       int64  `json:"id"`
	Question string `json:"question"`
}

// SlotAmount prices a consultation slot of Minute minutes.
type SlotAmount struct {
	ID     int64 `json:"id"`
	Minute int   `json:"minute"`
	Amount int   `json:"amount"`
}

// Image references an uploaded file by its stored filename.
type Image struct {
	ID       int64  `json:"id"`
	Filename string `json:"img"`
}

// Upload describes a file handed to the file-storage collaborator.
type Upload struct {
	Field        string
	OriginalName string
	ContentType  string
	Size         int64
}
