package models

// Subcategory is a named subdivision of a category.
type Subcategory struct {
	ID   string `json:"id" example:"rent"`
	Name string `json:"name" example:"Rent"`
}

// Category is reference data for grouping transactions. Transactions
// reference categories by ID without a foreign key: deleting a category in
// use leaves dangling IDs on transactions, which are shown as
// "Uncategorized" at display time.
type Category struct {
	ID            string        `json:"id" example:"household"`
	Name          string        `json:"name" example:"Household"`
	Color         string        `json:"color" example:"#AF52DE"`
	Icon          string        `json:"icon,omitempty" example:"home"`
	Subcategories []Subcategory `json:"subcategories,omitempty"`
}

// Validate checks the category invariants.
func (c Category) Validate() error {
	if c.Name == "" {
		return ErrNameEmpty
	}

	return nil
}

// DefaultCategories returns the category seed for a fresh profile.
func DefaultCategories() []Category {
	return []Category{
		{
			ID:    "household",
			Name:  "Household",
			Color: "#AF52DE",
			Icon:  "home",
			Subcategories: []Subcategory{
				{ID: "water", Name: "Water"},
				{ID: "gas", Name: "Gas"},
				{ID: "electricity", Name: "Electricity"},
				{ID: "taxes", Name: "Taxes"},
				{ID: "rent", Name: "Rent"},
				{ID: "internet", Name: "Internet"},
				{ID: "food", Name: "Food"},
				{ID: "phone", Name: "Phone"},
				{ID: "other", Name: "Other"},
			},
		},
		{
			ID:    "car",
			Name:  "Car",
			Color: "#007AFF",
			Icon:  "car",
			Subcategories: []Subcategory{
				{ID: "carGas", Name: "Gas"},
				{ID: "carLoan", Name: "Car Loan"},
				{ID: "insurance", Name: "Insurance"},
				{ID: "other", Name: "Other"},
			},
		},
		{
			ID:    "children",
			Name:  "Children",
			Color: "#4CD964",
			Icon:  "baby",
			Subcategories: []Subcategory{
				{ID: "school", Name: "School"},
				{ID: "sports", Name: "Sports"},
				{ID: "privateLessons", Name: "Private Lessons"},
				{ID: "pocketMoney", Name: "Pocket Money"},
				{ID: "other", Name: "Other"},
			},
		},
		{ID: "entertainment", Name: "Entertainment", Color: "#FF3B30", Icon: "tv"},
		{ID: "shopping", Name: "Shopping", Color: "#5AC8FA", Icon: "shopping-bag"},
		{ID: "health", Name: "Health", Color: "#FF9500", Icon: "heart"},
		{ID: "travel", Name: "Travel", Color: "#FF2D55", Icon: "plane"},
		{ID: "personal", Name: "Personal", Color: "#5856D6", Icon: "user"},
		{ID: "other", Name: "Other", Color: "#8E8E93", Icon: "more-horizontal"},
	}
}
