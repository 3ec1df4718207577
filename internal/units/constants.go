// Package units centralizes the physical constants and unit conventions
// shared by every kernel: distances in Angstroms, energies in kcal/mol,
// charges in elementary units, angles in radians internally (degrees at the
// parameter-table boundary).
package units

// Coulomb is the electrostatic prefactor k_e = 1/(4*pi*epsilon_0) expressed
// in kcal*Angstrom/(mol*e^2), so that Coulomb*q1*q2/r comes out in kcal/mol
// when q is in elementary charge units and r is in Angstroms.
//
// k_e = 1/(4*pi*eps0) * e^2 * N_A / (4184 * 1e-10)
const Coulomb = 332.0636

// DefaultSolventDielectric is the solvent dielectric constant used by the
// reaction-field correction when the caller does not override it.
const DefaultSolventDielectric = 78.5
