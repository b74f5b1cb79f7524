package academic

// HeaderStudentID identifies the student on upstream calls. The academic API
// trusts the portal's service network, so no per-request signature is added.
const HeaderStudentID = "X-Student-ID"
