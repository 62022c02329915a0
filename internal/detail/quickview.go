package detail

// QuickView is the modal state for previewing a product without leaving
// the listing. Opening it always starts from a clean selection.
type QuickView struct {
	open    bool
	product *ProductDetail

	ImageIndex      int
	SelectedPackage string
	Quantity        int
}

// Open shows the modal for a product, resetting the selection to the
// first image, the first package option and quantity one.
func (q *QuickView) Open(p ProductDetail) {
	q.open = true
	q.product = &p
	q.ImageIndex = 0
	q.SelectedPackage = ""
	if len(p.PackageOptions) > 0 {
		q.SelectedPackage = p.PackageOptions[0]
	}
	q.Quantity = 1
}

// Close hides the modal. The stale selection is discarded on next Open.
func (q *QuickView) Close() {
	q.open = false
	q.product = nil
}

func (q *QuickView) IsOpen() bool { return q.open }

// Product returns the previewed product, or nil when closed.
func (q *QuickView) Product() *ProductDetail { return q.product }

// SelectImage switches the gallery image; out-of-range indexes and calls
// while closed are ignored.
func (q *QuickView) SelectImage(i int) {
	if !q.open || q.product == nil || i < 0 || i >= len(q.product.Images) {
		return
	}
	q.ImageIndex = i
}

// SelectPackage picks one of the product's package options.
func (q *QuickView) SelectPackage(opt string) {
	if !q.open || q.product == nil {
		return
	}
	for _, o := range q.product.PackageOptions {
		if o == opt {
			q.SelectedPackage = opt
			return
		}
	}
}

// SetQuantity clamps to a minimum of one.
func (q *QuickView) SetQuantity(n int) {
	if !q.open {
		return
	}
	if n < 1 {
		n = 1
	}
	q.Quantity = n
}
