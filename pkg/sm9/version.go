package sm9

// Version identifies the implemented revision of the SM9 identity-based
// cryptography suite (GM/T 0044-2016).
const Version = "GM/T 0044-2016"
