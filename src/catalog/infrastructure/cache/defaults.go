package cache

import (
	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/catalog/domain/entity"

	"github.com/shopspring/decimal"
)

// Catálogo por defecto del mercado: se usa cuando todavía no hay snapshot
// local ni conexión con el store remoto. Misma lista semilla que carga la
// migración inicial.

func price(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

// DefaultCategories retorna la taxonomía semilla de categorías del local
func DefaultCategories() []entity.Category {
	return []entity.Category{
		{ID: 1, Name: "frutas", Color: "#FADCD9"},
		{ID: 2, Name: "verduras", Color: "#C1E1C1"},
		{ID: 3, Name: "tuberculos", Color: "#E6CCB2"},
		{ID: 4, Name: "frutales", Color: "#FFE5B4"},
		{ID: 5, Name: "hortalizas", Color: "#98FB98"},
		{ID: 6, Name: "bulbos", Color: "#E0B0FF"},
		{ID: 7, Name: "legumbres", Color: "#FFFACD"},
		{ID: 8, Name: "citricos", Color: "#FFD700"},
		{ID: 9, Name: "tropicales", Color: "#FF7F50"},
		{ID: 10, Name: "hierbas", Color: "#ACE1AF"},
	}
}

// DefaultProducts retorna los productos semilla del mercado
func DefaultProducts() []entity.Product {
	return []entity.Product{
		{ID: 1, Name: "Manzana Roja", Price: price("5.20"), Unit: "kg", Category: "frutas", Image: "https://images.unsplash.com/photo-1570913149827-d2ac84ab3f9a?auto=format&fit=crop&w=600&q=80"},
		{ID: 2, Name: "Plátano Seda", Price: price("2.50"), Unit: "kg", Category: "tropicales", Image: "https://images.unsplash.com/photo-1603833665858-e61d17a86224?auto=format&fit=crop&w=600&q=80"},
		{ID: 3, Name: "Papa Amarilla", Price: price("3.80"), Unit: "kg", Category: "tuberculos", Image: "https://images.unsplash.com/photo-1633013649620-420897578669?auto=format&fit=crop&w=600&q=80"},
		{ID: 4, Name: "Zanahoria", Price: price("1.90"), Unit: "kg", Category: "verduras", Image: "https://images.unsplash.com/photo-1598170845058-32b9d6a5da37?auto=format&fit=crop&w=600&q=80"},
		{ID: 5, Name: "Cebolla Roja", Price: price("2.20"), Unit: "kg", Category: "bulbos", Image: "https://images.unsplash.com/photo-1618512496248-a07fe83aa8cb?auto=format&fit=crop&w=600&q=80"},
		{ID: 6, Name: "Tomate", Price: price("3.50"), Unit: "kg", Category: "verduras", Image: "https://images.unsplash.com/photo-1592924357228-91a4daadcfea?auto=format&fit=crop&w=600&q=80"},
		{ID: 7, Name: "Naranja Jugo", Price: price("3.00"), Unit: "kg", Category: "citricos", Image: "https://images.unsplash.com/photo-1611080626919-7cf5a9dbab5b?auto=format&fit=crop&w=600&q=80"},
		{ID: 8, Name: "Piña Golden", Price: price("4.50"), Unit: "un", Category: "tropicales", Image: "https://images.unsplash.com/photo-1550258987-190a2d41a8ba?auto=format&fit=crop&w=600&q=80"},
		{ID: 9, Name: "Perejil", Price: price("1.00"), Unit: "un", Category: "hierbas", Image: "https://images.unsplash.com/photo-1622973536968-3ead9e780960?auto=format&fit=crop&w=600&q=80"},
		{ID: 10, Name: "Lechuga", Price: price("2.00"), Unit: "un", Category: "hortalizas", Image: "https://images.unsplash.com/photo-1622206151226-18ca2c9ab4a1?auto=format&fit=crop&w=600&q=80"},
		{ID: 11, Name: "Camote Morado", Price: price("2.80"), Unit: "kg", Category: "tuberculos", Image: "https://images.unsplash.com/photo-1596097635121-14b63b8a66cf?auto=format&fit=crop&w=600&q=80"},
		{ID: 12, Name: "Fresa", Price: price("8.00"), Unit: "kg", Category: "frutales", Image: "https://images.unsplash.com/photo-1464965911861-746a04b4bca6?auto=format&fit=crop&w=600&q=80"},
		{ID: 13, Name: "Mandarina", Price: price("3.50"), Unit: "kg", Category: "citricos", Image: "https://images.unsplash.com/photo-1611105637889-281587d2c9b9?auto=format&fit=crop&w=600&q=80"},
		{ID: 14, Name: "Brócoli", Price: price("4.20"), Unit: "un", Category: "verduras", Image: "https://images.unsplash.com/photo-1459411621453-7b03977f4bfc?auto=format&fit=crop&w=600&q=80"},
		{ID: 15, Name: "Ajo", Price: price("15.00"), Unit: "kg", Category: "bulbos", Image: "https://images.unsplash.com/photo-1588855933979-25d2997538eb?auto=format&fit=crop&w=600&q=80"},
		{ID: 16, Name: "Pimiento", Price: price("4.80"), Unit: "kg", Category: "verduras", Image: "https://images.unsplash.com/photo-1563565375-f3fdfdbefa83?auto=format&fit=crop&w=600&q=80"},
		{ID: 17, Name: "Limón", Price: price("4.50"), Unit: "kg", Category: "citricos", Image: "https://images.unsplash.com/photo-1513558161293-cdaf765ed2fd?auto=format&fit=crop&w=600&q=80"},
		{ID: 18, Name: "Palta Fuerte", Price: price("9.50"), Unit: "kg", Category: "tropicales", Image: "https://images.unsplash.com/photo-1596151782685-2214e70d280a?auto=format&fit=crop&w=600&q=80"},
		{ID: 19, Name: "Espinaca", Price: price("2.50"), Unit: "atado", Category: "hortalizas", Image: "https://images.unsplash.com/photo-1576045057995-568f588f82fb?auto=format&fit=crop&w=600&q=80"},
		{ID: 20, Name: "Apio", Price: price("3.00"), Unit: "atado", Category: "hortalizas", Image: "https://images.unsplash.com/photo-1610832958506-aa56368176cf?auto=format&fit=crop&w=600&q=80"},
	}
}
