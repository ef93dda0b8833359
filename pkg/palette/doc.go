// Package palette turns a seed colour into named shade ramps for design
// systems such as Tailwind, Chakra UI and Ant Design.
//
// All functions are pure and safe for concurrent use. The step schemas and
// the alpha table are fixed at init.
package palette
