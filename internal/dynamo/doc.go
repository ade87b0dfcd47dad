// Package dynamo provides the ODE primitives behind the demo multibody
// systems.
//
//   - [State]: flat vector of generalized coordinates and speeds
//   - [System]: dX/dt = f(X, t)
//   - [Integrator]: fixed-step numerical stepper
//   - [Hamiltonian]: optional energy accounting for conservative systems
//   - [Configurable]: optional runtime parameter access
//
// Integrator implementations live in the integrators package.
package dynamo
