package hooks

import "sync"

// PaymentMethods records which payment method codes use a bank account and which require one.
type PaymentMethods struct {
	mu    sync.RWMutex
	uses  map[string]bool
	needs map[string]bool
}

// NewPaymentMethods creates an empty registry.
func NewPaymentMethods() *PaymentMethods {
	return &PaymentMethods{uses: make(map[string]bool), needs: make(map[string]bool)}
}

// Register declares a method code. A method that needs a bank account also uses one.
func (r *PaymentMethods) Register(code string, usesBankAccount, needsBankAccount bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.uses[code] = usesBankAccount || needsBankAccount
	r.needs[code] = needsBankAccount
}

// UsesBankAccount reports whether payments of code carry a destination bank account.
func (r *PaymentMethods) UsesBankAccount(code string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.uses[code]
}

// NeedsBankAccount reports whether payments of code cannot be confirmed without one.
func (r *PaymentMethods) NeedsBankAccount(code string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.needs[code]
}
