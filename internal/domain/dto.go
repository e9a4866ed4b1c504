package domain

type RegisterOrderLine struct {
	ProductID int64
	Quantity  int64
}

// RegisterOrder заявка на заказ с одной доски.
type RegisterOrder struct {
	BoardID int64
	Lines   []RegisterOrderLine
}

// ValidatedLine позиция, прошедшая проверку. Product заблокирован до коммита транзакции.
type ValidatedLine struct {
	Product  Product
	Quantity int64
}
